package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultLoginAttemptsPerMinute is used when a non-positive limit is given.
const DefaultLoginAttemptsPerMinute = 10

// RateLimiter limits requests per client IP to perMinute, allowing a burst of
// the same size. It guards the login submission endpoint.
func RateLimiter(perMinute float64) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = DefaultLoginAttemptsPerMinute
	}
	burst := int(perMinute)
	if burst < 1 {
		burst = 1
	}

	config := middleware.RateLimiterConfig{
		// In-memory store; suitable for a single instance.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perMinute / 60),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("login rate limit exceeded", "client", identifier)
			return c.String(http.StatusTooManyRequests, "Demasiados intentos. Inténtalo de nuevo más tarde.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
