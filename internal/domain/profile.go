package domain

import "fmt"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
	GoalMuscle   Goal = "muscle"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// UserProfile is the validated input for one recommendation computation.
// It is built from a request, consumed once, and never mutated. Optional
// circumference fields are pointers: presence of neck+waist (plus hip for
// female) switches the body-fat estimate to the circumference formula.
type UserProfile struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Height        float64       `json:"height"`
	Weight        float64       `json:"weight"`
	BodyFat       *float64      `json:"bodyFat,omitempty"`
	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	MealsPerDay   int           `json:"mealsPerDay"`
	Allergies     []string      `json:"allergies"`
	Budget        int           `json:"budget"`

	NeckCircumference  *float64 `json:"neckCircumference,omitempty"`
	WaistCircumference *float64 `json:"waistCircumference,omitempty"`
	HipCircumference   *float64 `json:"hipCircumference,omitempty"`
}

// FieldError is one machine-readable validation failure, returned to the
// client in the 422 payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InvalidProfileError carries every field violation found in a profile.
type InvalidProfileError struct {
	Fields []FieldError
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %d field error(s)", len(e.Fields))
}

// Validate checks every bound and enum from the input contract. It returns a
// *InvalidProfileError listing all violations, or nil. The engine refuses to
// run any formula on a profile that fails this check.
func (p *UserProfile) Validate() error {
	var fields []FieldError

	add := func(field, format string, args ...any) {
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if p.Age < 10 || p.Age > 100 {
		add("age", "age must be between 10 and 100, got %d", p.Age)
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		add("gender", "gender must be male or female, got %q", p.Gender)
	}
	if p.Height < 100 || p.Height > 220 {
		add("height", "height must be between 100 and 220 cm, got %g", p.Height)
	}
	if p.Weight < 30 || p.Weight > 200 {
		add("weight", "weight must be between 30 and 200 kg, got %g", p.Weight)
	}
	if p.BodyFat != nil && (*p.BodyFat < 5 || *p.BodyFat > 50) {
		add("bodyFat", "bodyFat must be between 5 and 50 percent, got %g", *p.BodyFat)
	}
	switch p.Goal {
	case GoalLose, GoalMaintain, GoalGain, GoalMuscle:
	default:
		add("goal", "goal must be one of lose, maintain, gain, muscle, got %q", p.Goal)
	}
	switch p.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
	default:
		add("activityLevel", "unknown activity level %q", p.ActivityLevel)
	}
	if p.MealsPerDay < 2 || p.MealsPerDay > 3 {
		add("mealsPerDay", "mealsPerDay must be 2 or 3, got %d", p.MealsPerDay)
	}
	if p.Budget < 5000 || p.Budget > 100000 {
		add("budget", "budget must be between 5000 and 100000, got %d", p.Budget)
	}
	if p.NeckCircumference != nil && (*p.NeckCircumference < 20 || *p.NeckCircumference > 80) {
		add("neckCircumference", "neckCircumference must be between 20 and 80 cm, got %g", *p.NeckCircumference)
	}
	if p.WaistCircumference != nil && (*p.WaistCircumference < 50 || *p.WaistCircumference > 200) {
		add("waistCircumference", "waistCircumference must be between 50 and 200 cm, got %g", *p.WaistCircumference)
	}
	if p.HipCircumference != nil && (*p.HipCircumference < 50 || *p.HipCircumference > 200) {
		add("hipCircumference", "hipCircumference must be between 50 and 200 cm, got %g", *p.HipCircumference)
	}

	if len(fields) > 0 {
		return &InvalidProfileError{Fields: fields}
	}
	return nil
}

// HasCircumferences reports whether the circumference body-fat formula can be
// applied: neck and waist for male, plus hip for female.
func (p *UserProfile) HasCircumferences() bool {
	if p.NeckCircumference == nil || p.WaistCircumference == nil {
		return false
	}
	if p.Gender == GenderFemale && p.HipCircumference == nil {
		return false
	}
	return true
}
