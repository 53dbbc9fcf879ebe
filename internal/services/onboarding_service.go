package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/models"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
}

type flagRepairer interface {
	RepairCompletedFlags(ctx context.Context) (int64, error)
}

type OnboardingService struct {
	db             *pgxpool.Pool
	profileRepo    profileResolver
	onboardingRepo flagRepairer
}

func NewOnboardingService(db *pgxpool.Pool, profileRepo profileResolver, onboardingRepo flagRepairer) *OnboardingService {
	return &OnboardingService{
		db:             db,
		profileRepo:    profileRepo,
		onboardingRepo: onboardingRepo,
	}
}

// SubmitOnboarding resolves the profile by email, replaces its questionnaire
// answers, and marks the profile complete. Submitting for an unknown email
// fails; onboarding never creates a profile. The answer write and the flag
// write share one transaction so a failure cannot strand saved answers behind
// an unset flag.
func (s *OnboardingService) SubmitOnboarding(ctx context.Context, email string, input repository.OnboardingInput) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("resolve profile: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin onboarding save: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txOnboardingRepo := repository.NewOnboardingRepository(tx)
	_, err = txOnboardingRepo.GetByProfileID(ctx, profile.ID)
	switch {
	case err == nil:
		if err := txOnboardingRepo.UpdateByProfileID(ctx, profile.ID, input); err != nil {
			return fmt.Errorf("update onboarding response: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		if err := txOnboardingRepo.Insert(ctx, profile.ID, input); err != nil {
			return fmt.Errorf("insert onboarding response: %w", err)
		}
	default:
		return fmt.Errorf("lookup onboarding response: %w", err)
	}

	if err := repository.NewProfileRepository(tx).SetCompletedByID(ctx, profile.ID, true); err != nil {
		return fmt.Errorf("mark onboarding complete: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit onboarding save: %w", err)
	}
	return nil
}

// RepairCompletionFlags is the recovery action for profiles whose answers
// were saved before the completion flag write ever landed.
func (s *OnboardingService) RepairCompletionFlags(ctx context.Context) (int64, error) {
	repaired, err := s.onboardingRepo.RepairCompletedFlags(ctx)
	if err != nil {
		return 0, fmt.Errorf("repair completion flags: %w", err)
	}
	return repaired, nil
}
