package cors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Headers advertised on every response, including rejected ones, so browser
// preflights always learn what the API accepts.
const (
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type, Authorization"
)

// New returns the origin gate middleware over a fixed allow-list.
//
// Requests without an Origin header (curl, server-to-server) pass without an
// allow-origin echo. Requests from a listed origin pass and get the origin
// echoed back. Anything else is rejected with 403 and an empty body before
// any handler runs. An empty allow-list allows every origin, which is only
// acceptable for local testing.
//
// Trailing slashes are ignored on both the configured entries and the
// request origin. Preflight OPTIONS requests that pass the gate short-circuit
// with 200 and no body.
func New(allowed []string) fiber.Handler {
	allowList := make([]string, 0, len(allowed))
	for _, entry := range allowed {
		if origin := strings.TrimSuffix(strings.TrimSpace(entry), "/"); origin != "" {
			allowList = append(allowList, origin)
		}
	}

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)

		origin := c.Get(fiber.HeaderOrigin)
		if origin != "" {
			if !originAllowed(allowList, origin) {
				c.Status(fiber.StatusForbidden)
				return nil
			}
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			c.Vary(fiber.HeaderOrigin)
		}

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}

		return c.Next()
	}
}

// originAllowed reports whether origin matches the allow-list. An empty list
// allows everything.
func originAllowed(allowList []string, origin string) bool {
	if len(allowList) == 0 {
		return true
	}

	origin = strings.TrimSuffix(origin, "/")
	for _, allowed := range allowList {
		if allowed == origin {
			return true
		}
	}
	return false
}
