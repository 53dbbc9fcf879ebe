package handlers

import (
	"context"
	"errors"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/models"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileLister interface {
	ListWithOnboarding(ctx context.Context) ([]models.ProfileWithOnboarding, error)
}

type statsReader interface {
	Totals(ctx context.Context) (total int64, completed int64, err error)
	AnswerDistribution(ctx context.Context, column string) ([]repository.AnswerCount, error)
}

type profileDeleter interface {
	DeleteProfile(ctx context.Context, id int64) error
}

type completionRepairer interface {
	RepairCompletionFlags(ctx context.Context) (int64, error)
}

type AdminHandler struct {
	profileRepo       profileLister
	statsRepo         statsReader
	profileService    profileDeleter
	onboardingService completionRepairer
}

func NewAdminHandler(
	profileRepo profileLister,
	statsRepo statsReader,
	profileService profileDeleter,
	onboardingService completionRepairer,
) *AdminHandler {
	return &AdminHandler{
		profileRepo:       profileRepo,
		statsRepo:         statsRepo,
		profileService:    profileService,
		onboardingService: onboardingService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.profileRepo.ListWithOnboarding(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list users", "details": err.Error()})
	}
	if users == nil {
		users = []models.ProfileWithOnboarding{}
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

var statsFields = []string{
	"fitness_goal",
	"workout_frequency",
	"diet_preference",
	"willing_to_pay",
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	total, completed, err := h.statsRepo.Totals(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to compute stats", "details": err.Error()})
	}

	distributions := fiber.Map{}
	for _, field := range statsFields {
		counts, err := h.statsRepo.AnswerDistribution(c.Context(), field)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Failed to compute stats", "details": err.Error()})
		}
		distributions[field] = counts
	}

	return c.JSON(fiber.Map{
		"total_users":          total,
		"completed_onboarding": completed,
		"distributions":        distributions,
	})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := h.profileService.DeleteProfile(c.Context(), int64(id)); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete user", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *AdminHandler) Reconcile(c *fiber.Ctx) error {
	repaired, err := h.onboardingService.RepairCompletionFlags(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to reconcile onboarding flags", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":  "Reconciliation complete",
		"repaired": repaired,
	})
}
