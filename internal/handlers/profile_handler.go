package handlers

import (
	"context"
	"errors"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/models"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type profileUpserter interface {
	UpsertProfile(ctx context.Context, email string, input repository.ProfileInput) (services.UpsertResult, error)
	SetOnboardingStatus(ctx context.Context, email string, completed bool) error
}

type profileReader interface {
	Lookup(ctx context.Context, email, firebaseUID string) (*models.Profile, error)
}

type ProfileHandler struct {
	profileService profileUpserter
	profileRepo    profileReader
}

func NewProfileHandler(profileService profileUpserter, profileRepo profileReader) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		profileRepo:    profileRepo,
	}
}

type upsertProfileRequest struct {
	Email       string  `json:"email"`
	FirebaseUID *string `json:"firebase_uid"`
	FullName    *string `json:"full_name"`
	Gender      *string `json:"gender"`
	AvatarURL   *string `json:"avatar_url"`
}

type onboardingStatusRequest struct {
	Email     string `json:"email"`
	Completed bool   `json:"completed"`
}

func (h *ProfileHandler) UpsertProfile(c *fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.profileService.UpsertProfile(c.Context(), req.Email, repository.ProfileInput{
		FirebaseUID: req.FirebaseUID,
		FullName:    req.FullName,
		Gender:      req.Gender,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save profile", "details": err.Error()})
	}

	if result.Created {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Profile created successfully",
			"id":      result.ID,
		})
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"id":      result.ID,
	})
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	email := c.Query("email")
	firebaseUID := c.Query("firebase_uid")
	if email == "" && firebaseUID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "email or firebase_uid query parameter is required"})
	}

	profile, err := h.profileRepo.Lookup(c.Context(), email, firebaseUID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(nil)
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch profile", "details": err.Error()})
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) UpdateOnboardingStatus(c *fiber.Ctx) error {
	var req onboardingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.profileService.SetOnboardingStatus(c.Context(), req.Email, req.Completed); err != nil {
		switch {
		case errors.Is(err, services.ErrEmailRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Failed to update onboarding status", "details": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Onboarding status updated"})
}
