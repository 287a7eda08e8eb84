package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/api/metrics"
)

// Limiter is the per-IP fixed-window counter (Redis-backed in production).
type Limiter interface {
	Allow(ctx context.Context, ip string) (bool, error)
}

// RateLimit rejects requests over the per-IP budget with 429. A limiter
// backend failure fails open: serving traffic beats dropping it because
// Redis hiccuped.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RequestsThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
