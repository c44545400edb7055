package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/NureDudukovOleksandr/Kozachok/internal/identity"
)

// AuthRequired resolves the bearer token through the identity provider and
// stores the resulting user on the request. No handler, and therefore no
// store call, runs without an authenticated user.
func AuthRequired(verifier identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		user, err := verifier.Verify(c.Context(), parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", user.ID)
		c.Locals("display_name", user.Name)

		return c.Next()
	}
}
