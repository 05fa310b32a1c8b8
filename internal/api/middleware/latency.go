package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Latency delays every request by d to mimic a remote backend. A zero or
// negative d disables the delay. The wait ends early when the client goes away.
func Latency(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(c echo.Context) error {
			timer := time.NewTimer(d)
			defer timer.Stop()

			select {
			case <-timer.C:
				return next(c)
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			}
		}
	}
}
