package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/models"
	"github.com/DandaAkhilReddy/ReddyFitBack/internal/repository"
	"github.com/jackc/pgx/v5"
)

type stubProfileResolver struct {
	profile *models.Profile
	err     error
}

func (s *stubProfileResolver) GetByEmail(_ context.Context, _ string) (*models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

type stubFlagRepairer struct {
	repaired int64
	err      error
	calls    int
}

func (s *stubFlagRepairer) RepairCompletedFlags(_ context.Context) (int64, error) {
	s.calls++
	return s.repaired, s.err
}

func TestSubmitOnboardingRequiresEmail(t *testing.T) {
	service := NewOnboardingService(nil, &stubProfileResolver{}, &stubFlagRepairer{})

	err := service.SubmitOnboarding(context.Background(), "  ", repository.OnboardingInput{})
	if !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestSubmitOnboardingFailsForUnknownProfile(t *testing.T) {
	service := NewOnboardingService(nil, &stubProfileResolver{err: pgx.ErrNoRows}, &stubFlagRepairer{})

	err := service.SubmitOnboarding(context.Background(), "nobody@test.com", repository.OnboardingInput{})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSubmitOnboardingWrapsResolveErrors(t *testing.T) {
	storeErr := errors.New("timeout")
	service := NewOnboardingService(nil, &stubProfileResolver{err: storeErr}, &stubFlagRepairer{})

	err := service.SubmitOnboarding(context.Background(), "a@test.com", repository.OnboardingInput{})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestRepairCompletionFlags(t *testing.T) {
	repairer := &stubFlagRepairer{repaired: 4}
	service := NewOnboardingService(nil, &stubProfileResolver{}, repairer)

	repaired, err := service.RepairCompletionFlags(context.Background())
	if err != nil {
		t.Fatalf("RepairCompletionFlags: %v", err)
	}
	if repaired != 4 {
		t.Fatalf("expected 4 repaired, got %d", repaired)
	}
	if repairer.calls != 1 {
		t.Fatalf("expected one repair call, got %d", repairer.calls)
	}
}
