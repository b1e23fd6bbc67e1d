package domain

import "time"

// Summary is the nutrition-vs-target overview attached to every
// recommendation. The total* macro fields are the prescribed daily targets
// derived from targetCalories, never a sum over the selected meals.
type Summary struct {
	TotalCalories     int      `json:"totalCalories"`
	TotalProtein      int      `json:"totalProtein"`
	TotalCarbs        int      `json:"totalCarbs"`
	TotalFat          int      `json:"totalFat"`
	TotalBudget       int      `json:"totalBudget"`
	BodyFatPercentage float64  `json:"bodyFatPercentage"`
	LeanBodyMass      float64  `json:"leanBodyMass"`
	BMI               float64  `json:"bmi"`
	BMR               int      `json:"bmr"`
	TDEE              int      `json:"tdee"`
	NutritionAnalysis string   `json:"nutritionAnalysis"`
	Recommendations   []string `json:"recommendations"`
}

// DietRecommendation is the full engine output: exactly seven meals plus the
// summary.
type DietRecommendation struct {
	Meals   []Meal  `json:"meals"`
	Summary Summary `json:"summary"`
}

// RecommendResult wraps a computed recommendation with cache provenance.
type RecommendResult struct {
	Recommendation *DietRecommendation
	CacheHit       bool
}

// StoredRecommendation is one persisted history row for a registered user.
type StoredRecommendation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ProfileID *int64    `json:"profileId,omitempty"`
	Meals     []Meal    `json:"meals"`
	Summary   Summary   `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}
