package routes

import (
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/config"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/handlers"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/middleware"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	profileRepo := repository.NewProfileRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	profileService := services.NewProfileService(db, profileRepo)
	onboardingService := services.NewOnboardingService(db, profileRepo, onboardingRepo)

	profileHandler := handlers.NewProfileHandler(profileService, profileRepo)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	adminHandler := handlers.NewAdminHandler(profileRepo, statsRepo, profileService, onboardingService)

	api := app.Group("/api")

	api.Post("/profile", profileHandler.UpsertProfile)
	api.Get("/profile", profileHandler.GetProfile)
	api.Post("/onboarding", onboardingHandler.SubmitOnboarding)
	api.Put("/onboarding-status", profileHandler.UpdateOnboardingStatus)

	admin := api.Group("/admin", middleware.AdminKeyRequired(cfg.AdminAPIKey))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/stats", adminHandler.GetStats)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Post("/reconcile", adminHandler.Reconcile)

	registerDocsRoutes(app, cfg)

	// Unmatched routes fall through to here.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Route not found"})
	})
}
