package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Middleware returns Fiber middleware that records HTTP metrics per route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// The app error handler runs after middleware, so map handler errors
		// to the status they will produce.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		handler := c.Route().Path
		if handler == "" {
			handler = "unknown"
		}

		duration := time.Since(start).Seconds()
		statusLabel := strconv.Itoa(status)
		HTTPRequestDuration.WithLabelValues(handler, c.Method(), statusLabel).Observe(duration)
		HTTPRequestsTotal.WithLabelValues(handler, c.Method(), statusLabel).Inc()

		return err
	}
}
