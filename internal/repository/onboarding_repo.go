package repository

import (
	"context"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/models"
)

type OnboardingRepository struct {
	db DBTX
}

func NewOnboardingRepository(db DBTX) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

type OnboardingInput struct {
	FitnessGoal         *string
	CurrentFitnessLevel *string
	WorkoutFrequency    *string
	DietPreference      *string
	Motivation          *string
	BiggestChallenge    *string
	HowFoundUs          *string
	FeatureInterest     []string
	WillingToPay        *string
	PriceRange          *string
}

func (r *OnboardingRepository) GetByProfileID(ctx context.Context, profileID int64) (*models.OnboardingResponse, error) {
	query := `
		SELECT id, profile_id, fitness_goal, current_fitness_level, workout_frequency,
			   diet_preference, motivation, biggest_challenge, how_found_us,
			   feature_interest, willing_to_pay, price_range, created_at, updated_at
		FROM onboarding_responses
		WHERE profile_id = $1
	`
	var response models.OnboardingResponse
	var encodedInterest string
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&response.ID,
		&response.ProfileID,
		&response.FitnessGoal,
		&response.CurrentFitnessLevel,
		&response.WorkoutFrequency,
		&response.DietPreference,
		&response.Motivation,
		&response.BiggestChallenge,
		&response.HowFoundUs,
		&encodedInterest,
		&response.WillingToPay,
		&response.PriceRange,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	interest, err := decodeFeatureInterest(&encodedInterest)
	if err != nil {
		return nil, err
	}
	response.FeatureInterest = interest
	return &response, nil
}

func (r *OnboardingRepository) Insert(ctx context.Context, profileID int64, input OnboardingInput) error {
	encodedInterest, err := encodeFeatureInterest(input.FeatureInterest)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO onboarding_responses (
			profile_id, fitness_goal, current_fitness_level, workout_frequency,
			diet_preference, motivation, biggest_challenge, how_found_us,
			feature_interest, willing_to_pay, price_range
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		profileID,
		input.FitnessGoal,
		input.CurrentFitnessLevel,
		input.WorkoutFrequency,
		input.DietPreference,
		input.Motivation,
		input.BiggestChallenge,
		input.HowFoundUs,
		encodedInterest,
		input.WillingToPay,
		input.PriceRange,
	)
	return err
}

// UpdateByProfileID is a full replace: every answer field is overwritten with
// the submitted value, nulls included.
func (r *OnboardingRepository) UpdateByProfileID(ctx context.Context, profileID int64, input OnboardingInput) error {
	encodedInterest, err := encodeFeatureInterest(input.FeatureInterest)
	if err != nil {
		return err
	}
	query := `
		UPDATE onboarding_responses
		SET fitness_goal = $1,
			current_fitness_level = $2,
			workout_frequency = $3,
			diet_preference = $4,
			motivation = $5,
			biggest_challenge = $6,
			how_found_us = $7,
			feature_interest = $8,
			willing_to_pay = $9,
			price_range = $10,
			updated_at = NOW()
		WHERE profile_id = $11
	`
	_, err = r.db.Exec(ctx, query,
		input.FitnessGoal,
		input.CurrentFitnessLevel,
		input.WorkoutFrequency,
		input.DietPreference,
		input.Motivation,
		input.BiggestChallenge,
		input.HowFoundUs,
		encodedInterest,
		input.WillingToPay,
		input.PriceRange,
		profileID,
	)
	return err
}

func (r *OnboardingRepository) DeleteByProfileID(ctx context.Context, profileID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM onboarding_responses WHERE profile_id = $1`, profileID)
	return err
}

// RepairCompletedFlags flips the completion flag on profiles that have saved
// answers but were never marked complete, e.g. after a crash between the
// answer write and the flag write. Returns the number of repaired profiles.
func (r *OnboardingRepository) RepairCompletedFlags(ctx context.Context) (int64, error) {
	query := `
		UPDATE user_profiles
		SET onboarding_completed = TRUE, updated_at = NOW()
		WHERE onboarding_completed = FALSE
		  AND id IN (SELECT profile_id FROM onboarding_responses)
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
