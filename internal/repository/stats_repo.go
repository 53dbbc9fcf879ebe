package repository

import (
	"context"
	"fmt"
)

type StatsRepository struct {
	db DBTX
}

func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

type AnswerCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// Answer fields exposed to the distribution query. The column name is spliced
// into the SQL, so only columns in this set are accepted.
var distributionColumns = map[string]struct{}{
	"fitness_goal":          {},
	"current_fitness_level": {},
	"workout_frequency":     {},
	"diet_preference":       {},
	"how_found_us":          {},
	"willing_to_pay":        {},
	"price_range":           {},
}

func (r *StatsRepository) Totals(ctx context.Context) (total int64, completed int64, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE onboarding_completed)
		FROM user_profiles
	`
	err = r.db.QueryRow(ctx, query).Scan(&total, &completed)
	return total, completed, err
}

func (r *StatsRepository) AnswerDistribution(ctx context.Context, column string) ([]AnswerCount, error) {
	if _, ok := distributionColumns[column]; !ok {
		return nil, fmt.Errorf("unknown distribution column %q", column)
	}
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM onboarding_responses
		WHERE %s IS NOT NULL
		GROUP BY %s
		ORDER BY COUNT(*) DESC
	`, column, column, column)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []AnswerCount{}
	for rows.Next() {
		var count AnswerCount
		if err := rows.Scan(&count.Value, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}
