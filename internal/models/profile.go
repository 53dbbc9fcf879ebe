package models

import "time"

type Profile struct {
	ID                  int64     `json:"id"`
	Email               string    `json:"email"`
	FirebaseUID         *string   `json:"firebase_uid"`
	FullName            *string   `json:"full_name"`
	Gender              *string   `json:"gender"`
	AvatarURL           *string   `json:"avatar_url"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ProfileWithOnboarding is the admin listing row: a profile left-joined with
// its questionnaire answers, which may all be absent.
type ProfileWithOnboarding struct {
	Profile
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
