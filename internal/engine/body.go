package engine

import (
	"math"

	"github.com/ksaeil2001/capss/internal/domain"
)

// assumedAge is the fixed age term of the BMI-based body-fat estimate. The
// user's reported age never feeds this formula.
const assumedAge = 30

type bodyComposition struct {
	BMI          float64
	BodyFat      float64
	LeanBodyMass float64
	// Circumference is true when the U.S. Navy circumference formula was
	// used instead of the BMI-based estimate.
	Circumference bool
}

// estimateBodyComposition computes BMI, body-fat percentage and lean body
// mass. The circumference formula is used iff neck+waist (plus hip for
// female) are present; otherwise the BMI-based estimate applies. Exactly one
// method runs per computation.
//
// The clamp bounds are asymmetric on purpose: [3,50] for the circumference
// method, [5,50] for the BMI fallback.
func estimateBodyComposition(p *domain.UserProfile) bodyComposition {
	heightM := p.Height / 100
	bmi := p.Weight / (heightM * heightM)

	var bodyFat float64
	circumference := p.HasCircumferences()
	if circumference {
		if p.Gender == domain.GenderMale {
			waistMinusNeck := *p.WaistCircumference - *p.NeckCircumference
			bodyFat = 495/(1.0324-0.19077*math.Log10(waistMinusNeck)+0.15456*math.Log10(p.Height)) - 450
		} else {
			waistPlusHipMinusNeck := *p.WaistCircumference + *p.HipCircumference - *p.NeckCircumference
			bodyFat = 495/(1.29579-0.35004*math.Log10(waistPlusHipMinusNeck)+0.22100*math.Log10(p.Height)) - 450
		}
		bodyFat = clamp(bodyFat, 3, 50)
	} else {
		genderMultiplier := 0.0
		if p.Gender == domain.GenderMale {
			genderMultiplier = 1
		}
		bodyFat = 1.2*bmi + 0.23*assumedAge - 10.8*genderMultiplier - 5.4
		bodyFat = clamp(bodyFat, 5, 50)
	}

	leanBodyMass := p.Weight * (1 - bodyFat/100)

	return bodyComposition{
		BMI:           bmi,
		BodyFat:       bodyFat,
		LeanBodyMass:  leanBodyMass,
		Circumference: circumference,
	}
}
