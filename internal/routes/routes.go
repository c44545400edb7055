package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NureDudukovOleksandr/Kozachok/internal/config"
	"github.com/NureDudukovOleksandr/Kozachok/internal/handlers"
	"github.com/NureDudukovOleksandr/Kozachok/internal/identity"
	"github.com/NureDudukovOleksandr/Kozachok/internal/middleware"
	"github.com/NureDudukovOleksandr/Kozachok/internal/services"
	"github.com/NureDudukovOleksandr/Kozachok/internal/store"
	"github.com/NureDudukovOleksandr/Kozachok/internal/training"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, profileStore store.ProfileStore) {
	var verifier identity.Verifier
	if cfg.IDPUserinfoURL != "" {
		verifier = identity.NewUserinfoVerifier(cfg.IDPUserinfoURL)
	} else {
		verifier = identity.NewTokenVerifier(cfg.JWTSecret)
	}

	policy := training.Lenient
	if cfg.ValidationMode == config.ValidationStrict {
		policy = training.Strict
	}

	profileService := services.NewProfileService(profileStore)
	profileHandler := handlers.NewProfileHandler(profileService)
	trainingHandler := handlers.NewTrainingHandler(profileService, policy)
	exerciseHandler := handlers.NewExerciseHandler()

	api := app.Group("/api/v1", middleware.AuthRequired(verifier))

	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile", profileHandler.UpdateProfile)

	api.Get("/trainings", trainingHandler.ListTrainings)
	api.Post("/trainings", trainingHandler.AddTraining)
	api.Get("/stats/series", trainingHandler.GetStatsSeries)

	api.Get("/exercises", exerciseHandler.ListExercises)
	api.Get("/exercises/:name", exerciseHandler.GetExercise)
}
