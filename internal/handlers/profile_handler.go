package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
)

type profileService interface {
	EnsureProvisioned(ctx context.Context, userID, displayName string) (*models.Profile, error)
	LoadProfile(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfileEdits(ctx context.Context, userID string, profile *models.Profile) error
}

type ProfileHandler struct {
	service profileService
}

func NewProfileHandler(service profileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	Name          string          `json:"name"`
	Birthday      string          `json:"birthday"`
	Height        string          `json:"height"`
	Weight        string          `json:"weight"`
	Notifications map[string]bool `json:"notifications"`
}

// GetProfile returns the caller's profile, creating an empty one on first
// login.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, displayName := requestUser(c)

	profile, err := h.service.EnsureProvisioned(c.Context(), userID, displayName)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"profile": profile})
}

// UpdateProfile applies the editable fields onto the stored document and
// writes it back in full. The administrator flag and the training history
// are never taken from the request body.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, _ := requestUser(c)

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.service.LoadProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	profile.Name = req.Name
	profile.Birthday = req.Birthday
	profile.Height = req.Height
	profile.Weight = req.Weight
	if req.Notifications != nil {
		profile.Notifications = req.Notifications
	}

	if err := h.service.SaveProfileEdits(c.Context(), userID, profile); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"profile": profile})
}
