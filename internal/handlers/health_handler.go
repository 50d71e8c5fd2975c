package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// HandleLiveness answers GET / with a plain-text liveness string naming the store.
func HandleLiveness(storeName string) fiber.Handler {
	body := fmt.Sprintf("Backend is running with %s store!", storeName)
	return func(c *fiber.Ctx) error {
		return c.SendString(body)
	}
}
