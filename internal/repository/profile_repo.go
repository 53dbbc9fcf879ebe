package repository

import (
	"context"
	"errors"

	"github.com/DandaAkhilReddy/ReddyFitBack/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, email, firebase_uid, full_name, gender, avatar_url,
	   onboarding_completed, created_at, updated_at`

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE email = $1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, email))
}

func (r *ProfileRepository) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE firebase_uid = $1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, firebaseUID))
}

// Lookup resolves a profile by email or firebase uid. When both are given and
// match different rows, the email match wins.
func (r *ProfileRepository) Lookup(ctx context.Context, email, firebaseUID string) (*models.Profile, error) {
	if email != "" {
		profile, err := r.GetByEmail(ctx, email)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}
	if firebaseUID != "" {
		return r.GetByFirebaseUID(ctx, firebaseUID)
	}
	return nil, pgx.ErrNoRows
}

type ProfileInput struct {
	FirebaseUID *string
	FullName    *string
	Gender      *string
	AvatarURL   *string
}

func (r *ProfileRepository) Insert(ctx context.Context, email string, input ProfileInput) (int64, error) {
	query := `
		INSERT INTO user_profiles (email, firebase_uid, full_name, gender, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, email, input.FirebaseUID, input.FullName, input.Gender, input.AvatarURL).
		Scan(&id)
	return id, err
}

// UpdateByEmail overwrites the mutable attributes unconditionally, nulls
// included. Last write wins.
func (r *ProfileRepository) UpdateByEmail(ctx context.Context, email string, input ProfileInput) (int64, error) {
	query := `
		UPDATE user_profiles
		SET firebase_uid = $1,
			full_name = $2,
			gender = $3,
			avatar_url = $4,
			updated_at = NOW()
		WHERE email = $5
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, input.FirebaseUID, input.FullName, input.Gender, input.AvatarURL, email).
		Scan(&id)
	return id, err
}

func (r *ProfileRepository) SetCompletedByEmail(ctx context.Context, email string, completed bool) error {
	query := `
		UPDATE user_profiles
		SET onboarding_completed = $1, updated_at = NOW()
		WHERE email = $2
	`
	tag, err := r.db.Exec(ctx, query, completed, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProfileRepository) SetCompletedByID(ctx context.Context, id int64, completed bool) error {
	query := `
		UPDATE user_profiles
		SET onboarding_completed = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, completed, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProfileRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProfileRepository) ListWithOnboarding(ctx context.Context) ([]models.ProfileWithOnboarding, error) {
	query := `
		SELECT p.id, p.email, p.firebase_uid, p.full_name, p.gender, p.avatar_url,
			   p.onboarding_completed, p.created_at, p.updated_at,
			   o.fitness_goal, o.current_fitness_level, o.workout_frequency,
			   o.diet_preference, o.motivation, o.biggest_challenge, o.how_found_us,
			   o.feature_interest, o.willing_to_pay, o.price_range
		FROM user_profiles p
		LEFT JOIN onboarding_responses o ON o.profile_id = p.id
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.ProfileWithOnboarding
	for rows.Next() {
		var row models.ProfileWithOnboarding
		var encodedInterest *string
		err := rows.Scan(
			&row.ID,
			&row.Email,
			&row.FirebaseUID,
			&row.FullName,
			&row.Gender,
			&row.AvatarURL,
			&row.OnboardingCompleted,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.FitnessGoal,
			&row.CurrentFitnessLevel,
			&row.WorkoutFrequency,
			&row.DietPreference,
			&row.Motivation,
			&row.BiggestChallenge,
			&row.HowFoundUs,
			&encodedInterest,
			&row.WillingToPay,
			&row.PriceRange,
		)
		if err != nil {
			return nil, err
		}
		interest, err := decodeFeatureInterest(encodedInterest)
		if err != nil {
			return nil, err
		}
		row.FeatureInterest = interest
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *ProfileRepository) scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.FirebaseUID,
		&profile.FullName,
		&profile.Gender,
		&profile.AvatarURL,
		&profile.OnboardingCompleted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
