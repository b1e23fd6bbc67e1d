// Package engine computes a personalized diet recommendation from a validated
// user profile and the fixed meal catalog. Every function here is
// deterministic and side-effect free: no I/O, no clock, no randomness. The
// same profile always produces the same result.
package engine

import (
	"math"

	"github.com/ksaeil2001/capss/internal/domain"
)

type Engine struct {
	catalog []domain.Meal
}

// New builds an engine over the given catalog. The catalog must be non-empty;
// selection indexes modulo its length, so an empty catalog is rejected here
// once instead of failing on every request.
func New(catalog []domain.Meal) (*Engine, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return &Engine{catalog: catalog}, nil
}

// Recommend runs the full pipeline: body composition, energy and macro
// targets, meal selection against the catalog, then the narrative, all
// assembled into one result. The profile is validated before any formula
// runs; a failed validation returns *domain.InvalidProfileError and no
// partial result.
func (e *Engine) Recommend(p *domain.UserProfile) (*domain.DietRecommendation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	comp := estimateBodyComposition(p)
	bmr, tdee, targetCalories := computeEnergy(comp.LeanBodyMass, p.ActivityLevel, p.Goal)
	protein, carbs, fat := macroTargets(targetCalories)
	meals := selectMeals(e.catalog, p.Goal)
	analysis, recommendations := buildNarrative(comp, bmr, tdee, p.Allergies)

	return &domain.DietRecommendation{
		Meals: meals,
		Summary: domain.Summary{
			TotalCalories:     int(math.Round(targetCalories)),
			TotalProtein:      protein,
			TotalCarbs:        carbs,
			TotalFat:          fat,
			TotalBudget:       p.Budget,
			BodyFatPercentage: round1(comp.BodyFat),
			LeanBodyMass:      round1(comp.LeanBodyMass),
			BMI:               round1(comp.BMI),
			BMR:               int(math.Round(bmr)),
			TDEE:              int(math.Round(tdee)),
			NutritionAnalysis: analysis,
			Recommendations:   recommendations,
		},
	}, nil
}

// Summarize returns only the summary for the preview workflow. It still runs
// the full pipeline, meal selection included, so a preview and a later full
// call over the same profile can never disagree.
func (e *Engine) Summarize(p *domain.UserProfile) (*domain.Summary, error) {
	rec, err := e.Recommend(p)
	if err != nil {
		return nil, err
	}
	s := rec.Summary
	return &s, nil
}

// round1 rounds to one decimal place. Used only when values cross into the
// summary; intermediate formulas keep full precision.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
