package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ksaeil2001/capss/internal/domain"
)

// SaveProfile stores the profile snapshot a recommendation was computed from
// and returns the new row id. Allergies go in as jsonb.
func (r *Repository) SaveProfile(ctx context.Context, userID int64, p *domain.UserProfile) (int64, error) {
	allergies := p.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	allergiesJSON, err := json.Marshal(allergies)
	if err != nil {
		return 0, fmt.Errorf("marshal allergies: %w", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx,
		`INSERT INTO user_profiles
		   (user_id, age, gender, height, weight, body_fat, goal, activity_level,
		    meals_per_day, allergies, budget,
		    neck_circumference, waist_circumference, hip_circumference)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		userID, p.Age, p.Gender, p.Height, p.Weight, p.BodyFat, p.Goal,
		p.ActivityLevel, p.MealsPerDay, allergiesJSON, p.Budget,
		p.NeckCircumference, p.WaistCircumference, p.HipCircumference,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("insert profile for user %d: %w", userID, err)
	}
	return id, nil
}
