package models

import "time"

type OnboardingResponse struct {
	ID                  int64     `json:"id"`
	ProfileID           int64     `json:"profile_id"`
	FitnessGoal         *string   `json:"fitness_goal"`
	CurrentFitnessLevel *string   `json:"current_fitness_level"`
	WorkoutFrequency    *string   `json:"workout_frequency"`
	DietPreference      *string   `json:"diet_preference"`
	Motivation          *string   `json:"motivation"`
	BiggestChallenge    *string   `json:"biggest_challenge"`
	HowFoundUs          *string   `json:"how_found_us"`
	FeatureInterest     []string  `json:"feature_interest"`
	WillingToPay        *string   `json:"willing_to_pay"`
	PriceRange          *string   `json:"price_range"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
