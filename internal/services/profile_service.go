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

var (
	ErrEmailRequired   = errors.New("email is required")
	ErrProfileNotFound = errors.New("profile not found")
)

type profileWriter interface {
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Insert(ctx context.Context, email string, input repository.ProfileInput) (int64, error)
	UpdateByEmail(ctx context.Context, email string, input repository.ProfileInput) (int64, error)
	SetCompletedByEmail(ctx context.Context, email string, completed bool) error
}

type ProfileService struct {
	db          *pgxpool.Pool
	profileRepo profileWriter
}

func NewProfileService(db *pgxpool.Pool, profileRepo profileWriter) *ProfileService {
	return &ProfileService{db: db, profileRepo: profileRepo}
}

type UpsertResult struct {
	ID      int64
	Created bool
}

// UpsertProfile reconciles a profile by its email. A known email gets all
// mutable attributes overwritten; an unknown one gets a fresh row. Two calls
// with identical input converge on the same row state, the second reported as
// an update.
func (s *ProfileService) UpsertProfile(ctx context.Context, email string, input repository.ProfileInput) (UpsertResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return UpsertResult{}, ErrEmailRequired
	}

	existing, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return UpsertResult{}, fmt.Errorf("lookup profile: %w", err)
	}

	if existing != nil {
		id, err := s.profileRepo.UpdateByEmail(ctx, email, input)
		if err != nil {
			return UpsertResult{}, fmt.Errorf("update profile: %w", err)
		}
		return UpsertResult{ID: id, Created: false}, nil
	}

	id, err := s.profileRepo.Insert(ctx, email, input)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("insert profile: %w", err)
	}
	return UpsertResult{ID: id, Created: true}, nil
}

func (s *ProfileService) SetOnboardingStatus(ctx context.Context, email string, completed bool) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	err := s.profileRepo.SetCompletedByEmail(ctx, email, completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("update onboarding status: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile and its dependent onboarding row in a
// single transaction, the dependent row first.
func (s *ProfileService) DeleteProfile(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := repository.NewOnboardingRepository(tx).DeleteByProfileID(ctx, id); err != nil {
		return fmt.Errorf("delete onboarding response: %w", err)
	}
	if err := repository.NewProfileRepository(tx).DeleteByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}
