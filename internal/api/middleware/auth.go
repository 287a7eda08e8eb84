package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/api/metrics"
	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

const principalKey = "principal"

// Auth resolves the bearer credential into a principal and stores it on the
// request context. Failures short-circuit with the auth gate's sentinel
// errors; the central error handler maps them to status codes.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := auth.Authenticate(c.Request().Context(), c.Request().Header.Get("Authorization"))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Principal returns the authenticated identity set by Auth, or nil when the
// auth stage has not run.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, domain.ErrCredentialExpired):
		return "expired"
	case errors.Is(err, domain.ErrInvalidCredential):
		return "invalid"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
