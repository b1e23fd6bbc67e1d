package engine

import "github.com/ksaeil2001/capss/internal/domain"

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for the energy chain.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// goalMultipliers adjusts TDEE into the target calorie value: 20% deficit for
// weight loss, 10% surplus for weight gain, 15% surplus for muscle gain.
var goalMultipliers = map[domain.Goal]float64{
	domain.GoalLose:     0.8,
	domain.GoalMaintain: 1.0,
	domain.GoalGain:     1.1,
	domain.GoalMuscle:   1.15,
}

// computeEnergy derives BMR, TDEE and the goal-adjusted calorie target from
// lean body mass. BMR always uses Katch-McArdle: 370 + 21.6 × LBM.
func computeEnergy(leanBodyMass float64, activity domain.ActivityLevel, goal domain.Goal) (bmr, tdee, targetCalories float64) {
	bmr = 370 + 21.6*leanBodyMass
	tdee = bmr * activityMultipliers[activity]
	targetCalories = tdee * goalMultipliers[goal]
	return bmr, tdee, targetCalories
}

// mifflinStJeorBMR is the weight/height/age BMR variant, kept for reference
// and comparison only. It must never feed the TDEE chain; Katch-McArdle is
// the authoritative formula.
func mifflinStJeorBMR(gender domain.Gender, weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == domain.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}
