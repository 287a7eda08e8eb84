package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	return "tok", &domain.User{ID: "u1", Email: in.Email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "tok", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Principal, error) {
	return nil, domain.ErrMissingCredential
}

func (s *stubAuthService) ChangePassword(context.Context, string, string, string) error {
	return nil
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, handler(e.NewContext(req, rec))
}

func TestRegisterHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := postJSON(t, h.Register, "/api/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"longenough"}`)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.User == nil || resp.User.Email != "ada@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterHandler_ValidationFailures(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"missing_email":  `{"firstName":"Ada","lastName":"Lovelace","password":"longenough"}`,
		"bad_email":      `{"firstName":"Ada","lastName":"Lovelace","email":"nope","password":"longenough"}`,
		"short_password": `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"short"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := postJSON(t, h.Register, "/api/auth/register", body)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	_, err := postJSON(t, h.Register, "/api/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"longenough"}`)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("service error must reach the central handler, got %v", err)
	}
}

func TestLoginHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := postJSON(t, h.Login, "/api/auth/login",
		`{"email":"ada@example.com","password":"pw"}`)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	_, err := postJSON(t, h.Login, "/api/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
