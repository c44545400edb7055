package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NureDudukovOleksandr/Kozachok/internal/apperror"
)

// respondError maps a service error to its HTTP status and a client-safe
// message. Unrecognized errors become a plain 500.
func respondError(c *fiber.Ctx, err error) error {
	status := apperror.HTTPStatus(err)

	message := "Internal server error"
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	return c.Status(status).JSON(fiber.Map{"error": message})
}

// requestUser pulls the authenticated user id and display name stored by the
// auth middleware.
func requestUser(c *fiber.Ctx) (userID, displayName string) {
	userID, _ = c.Locals("user_id").(string)
	displayName, _ = c.Locals("display_name").(string)
	return userID, displayName
}
