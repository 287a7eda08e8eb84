package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/delispi/storefront-api/internal/api/metrics"
	"github.com/delispi/storefront-api/internal/core/domain"
)

// RequireRole enforces a role on an already-authenticated request. It must
// run after Auth; without a principal it fails as unauthenticated, never as
// forbidden.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := Principal(c).RequireRole(role); err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}
			return next(c)
		}
	}
}

// RequireAdmin guards the admin console routes.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(domain.RoleAdmin)
}
