package engine

import "math"

// Fixed macro energy split: protein 30%, carbs 40%, fat 30% of target
// calories, at 4/4/9 kcal per gram.
const (
	proteinCalorieShare = 0.30
	carbCalorieShare    = 0.40
	fatCalorieShare     = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// macroTargets splits the target calorie value into daily gram targets.
// These are prescribed targets, independent of whichever meals end up
// selected.
func macroTargets(targetCalories float64) (protein, carbs, fat int) {
	protein = int(math.Round(targetCalories * proteinCalorieShare / kcalPerGramProtein))
	carbs = int(math.Round(targetCalories * carbCalorieShare / kcalPerGramCarb))
	fat = int(math.Round(targetCalories * fatCalorieShare / kcalPerGramFat))
	return protein, carbs, fat
}
