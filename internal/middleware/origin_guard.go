package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// OriginGuard rejects cross-origin requests from origins outside allowedOrigins.
// Requests without an Origin header, such as server-to-server calls, pass through.
func OriginGuard(allowedOrigins []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}
		if _, ok := allowed[origin]; ok {
			return c.Next()
		}

		log.Printf("Rejected %s %s from origin %s", c.Method(), c.Path(), origin)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not allowed by CORS",
		})
	}
}
