package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/NureDudukovOleksandr/Kozachok/internal/exercises"
)

type ExerciseHandler struct{}

func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{}
}

func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"exercises": exercises.Catalog()})
}

func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}
	exercise, ok := exercises.Find(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}
