package handlers

import (
	"context"
	"errors"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type onboardingSubmitter interface {
	SubmitOnboarding(ctx context.Context, email string, input repository.OnboardingInput) error
}

type OnboardingHandler struct {
	onboardingService onboardingSubmitter
}

func NewOnboardingHandler(onboardingService onboardingSubmitter) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

type submitOnboardingRequest struct {
	Email               string   `json:"email"`
	FitnessGoal         *string  `json:"fitness_goal"`
	CurrentFitnessLevel *string  `json:"current_fitness_level"`
	WorkoutFrequency    *string  `json:"workout_frequency"`
	DietPreference      *string  `json:"diet_preference"`
	Motivation          *string  `json:"motivation"`
	BiggestChallenge    *string  `json:"biggest_challenge"`
	HowFoundUs          *string  `json:"how_found_us"`
	FeatureInterest     []string `json:"feature_interest"`
	WillingToPay        *string  `json:"willing_to_pay"`
	PriceRange          *string  `json:"price_range"`
}

func (h *OnboardingHandler) SubmitOnboarding(c *fiber.Ctx) error {
	var req submitOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := h.onboardingService.SubmitOnboarding(c.Context(), req.Email, repository.OnboardingInput{
		FitnessGoal:         req.FitnessGoal,
		CurrentFitnessLevel: req.CurrentFitnessLevel,
		WorkoutFrequency:    req.WorkoutFrequency,
		DietPreference:      req.DietPreference,
		Motivation:          req.Motivation,
		BiggestChallenge:    req.BiggestChallenge,
		HowFoundUs:          req.HowFoundUs,
		FeatureInterest:     req.FeatureInterest,
		WillingToPay:        req.WillingToPay,
		PriceRange:          req.PriceRange,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "User not found. Please create profile first."})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Failed to save onboarding", "details": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Onboarding saved successfully",
		"success": true,
	})
}
