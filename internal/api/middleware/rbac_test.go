package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/core/domain"
)

func invokeWithPrincipal(t *testing.T, mw echo.MiddlewareFunc, p *domain.Principal, handler echo.HandlerFunc) error {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if p != nil {
		c.Set(principalKey, p)
	}
	return mw(handler)(c)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	called := false
	err := invokeWithPrincipal(t, RequireAdmin(),
		&domain.Principal{ID: "u1", Role: domain.RoleAdmin},
		func(c echo.Context) error {
			called = true
			return nil
		})
	if err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
	if !called {
		t.Fatal("handler was not reached")
	}
}

func TestRequireAdmin_RoleCaseInsensitive(t *testing.T) {
	err := invokeWithPrincipal(t, RequireAdmin(),
		&domain.Principal{ID: "u1", Role: "Admin"},
		func(c echo.Context) error { return nil })
	if err != nil {
		t.Fatalf("role casing must not matter: %v", err)
	}
}

func TestRequireAdmin_RejectsUser(t *testing.T) {
	err := invokeWithPrincipal(t, RequireAdmin(),
		&domain.Principal{ID: "u1", Role: domain.RoleUser},
		func(c echo.Context) error { return nil })
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// Without a principal the failure is "not authenticated", not "forbidden",
// so a client that skipped login is told to log in.
func TestRequireAdmin_NoPrincipal(t *testing.T) {
	err := invokeWithPrincipal(t, RequireAdmin(), nil,
		func(c echo.Context) error { return nil })
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}
