package engine

import (
	"fmt"
	"sort"

	"github.com/ksaeil2001/capss/internal/domain"
)

// poolSize is the fixed length of every recommendation list. It is
// deliberately decoupled from mealsPerDay: downstream meal planning fills its
// slots from this pool of seven.
const poolSize = 7

// selectMeals orders a copy of the catalog by goal and takes seven entries,
// wrapping around when the catalog is shorter. Each selected meal is cloned
// and given a fresh food-{n} id so repeated catalog entries stay individually
// addressable.
//
// Allergies do not filter the catalog here; they only annotate the narrative.
func selectMeals(catalog []domain.Meal, goal domain.Goal) []domain.Meal {
	sorted := make([]domain.Meal, len(catalog))
	copy(sorted, catalog)

	switch goal {
	case domain.GoalLose:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Calories < sorted[j].Calories })
	case domain.GoalMuscle:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Protein > sorted[j].Protein })
	case domain.GoalGain:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Calories > sorted[j].Calories })
	default:
		// maintain keeps catalog order
	}

	selected := make([]domain.Meal, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		meal := sorted[i%len(sorted)].Clone()
		meal.ID = fmt.Sprintf("food-%d", i+1)
		selected = append(selected, meal)
	}
	return selected
}
