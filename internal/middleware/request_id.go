package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID tags every request with an id, reusing the caller's header when
// present so client-side retries stay correlatable in logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Locals("request_id", rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}
