package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing_credential", domain.ErrMissingCredential, http.StatusUnauthorized},
		{"expired_credential", domain.ErrCredentialExpired, http.StatusUnauthorized},
		{"invalid_credential", domain.ErrInvalidCredential, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"bad_login", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"duplicate_user", domain.ErrUserExists, http.StatusBadRequest},
		{"wrong_password", domain.ErrWrongPassword, http.StatusBadRequest},
		{"invalid_order", domain.ErrInvalidOrder, http.StatusBadRequest},
		{"invalid_status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"user_not_found", domain.ErrUserNotFound, http.StatusNotFound},
		{"product_not_found", domain.ErrProductNotFound, http.StatusNotFound},
		{"order_not_found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"address_not_found", domain.ErrAddressNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := handleError(t, tc.err)
			if code != tc.code {
				t.Fatalf("status = %d, want %d", code, tc.code)
			}
			if body.Error != tc.err.Error() {
				t.Fatalf("message = %q, want %q", body.Error, tc.err.Error())
			}
		})
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
	if code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", code)
	}
	if body.Error != "too many requests" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}

// Unexpected failures never leak their cause to the client.
func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, body := handleError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}
	if strings.Contains(body.Error, "mongo") {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
	if body.Error != "internal server error" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}
