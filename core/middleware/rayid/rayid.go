package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response (and accepted request) header for the ray id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the ray id.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning every request a ray id.
// An incoming X-Ray-ID header is reused so calls can be traced across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
