package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
	"github.com/NureDudukovOleksandr/Kozachok/internal/training"
)

type trainingService interface {
	LoadProfile(ctx context.Context, userID string) (*models.Profile, error)
	LogTraining(ctx context.Context, userID string, record models.TrainingRecord) (*models.Profile, error)
}

type TrainingHandler struct {
	service trainingService
	policy  training.ParsePolicy
}

func NewTrainingHandler(service trainingService, policy training.ParsePolicy) *TrainingHandler {
	return &TrainingHandler{service: service, policy: policy}
}

// addTrainingRequest mirrors the add-training form: every field arrives as
// text and is parsed per the configured policy.
type addTrainingRequest struct {
	Date      string `json:"date"`
	Weight    string `json:"weight"`
	Height    string `json:"height"`
	Exercises string `json:"exercises"`
	Hours     string `json:"hours"`
}

// ListTrainings returns the history most recent first.
func (h *TrainingHandler) ListTrainings(c *fiber.Ctx) error {
	userID, _ := requestUser(c)

	profile, err := h.service.LoadProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"trainings": training.SortByDateDesc(profile.TrainingData),
	})
}

// AddTraining parses the form fields, appends the record and returns the
// refreshed profile.
func (h *TrainingHandler) AddTraining(c *fiber.Ctx) error {
	userID, _ := requestUser(c)

	var req addTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.policy.ParseRecord(req.Date, req.Weight, req.Height, req.Exercises, req.Hours)
	if err != nil {
		return respondError(c, err)
	}

	profile, err := h.service.LogTraining(c.Context(), userID, record)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"profile": profile})
}

// GetStatsSeries returns the weight and hours chart series. Both series are
// built from the date-ordered history so the chart and the history table
// agree on ordering.
func (h *TrainingHandler) GetStatsSeries(c *fiber.Ctx) error {
	userID, _ := requestUser(c)

	profile, err := h.service.LoadProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	weight, hours := training.ChartSeries(profile.TrainingData)
	return c.JSON(fiber.Map{
		"weight": weight,
		"hours":  hours,
	})
}
