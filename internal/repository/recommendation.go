package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ksaeil2001/capss/internal/domain"
)

// SaveRecommendation persists a computed recommendation as jsonb, the way the
// history view consumes it: opaque meals + summary, no relational breakdown.
func (r *Repository) SaveRecommendation(ctx context.Context, userID int64, profileID *int64, rec *domain.DietRecommendation) (int64, error) {
	mealsJSON, err := json.Marshal(rec.Meals)
	if err != nil {
		return 0, fmt.Errorf("marshal meals: %w", err)
	}
	summaryJSON, err := json.Marshal(rec.Summary)
	if err != nil {
		return 0, fmt.Errorf("marshal summary: %w", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx,
		`INSERT INTO diet_recommendations (user_id, profile_id, meals, summary)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, profileID, mealsJSON, summaryJSON,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("insert recommendation for user %d: %w", userID, err)
	}
	return id, nil
}

// ListRecommendationsByUser returns a user's stored recommendations, newest
// first.
func (r *Repository) ListRecommendationsByUser(ctx context.Context, userID int64) ([]domain.StoredRecommendation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, profile_id, meals, summary, created_at
		 FROM diet_recommendations
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query recommendations for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.StoredRecommendation
	for rows.Next() {
		var (
			item        domain.StoredRecommendation
			mealsJSON   []byte
			summaryJSON []byte
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProfileID, &mealsJSON, &summaryJSON, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		if err := json.Unmarshal(mealsJSON, &item.Meals); err != nil {
			return nil, fmt.Errorf("unmarshal meals for recommendation %d: %w", item.ID, err)
		}
		if err := json.Unmarshal(summaryJSON, &item.Summary); err != nil {
			return nil, fmt.Errorf("unmarshal summary for recommendation %d: %w", item.ID, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}
	return items, nil
}
