package domain

import (
	"errors"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func validProfile() *UserProfile {
	return &UserProfile{
		Age:           25,
		Gender:        GenderFemale,
		Height:        165,
		Weight:        58,
		Goal:          GoalLose,
		ActivityLevel: ActivityLight,
		MealsPerDay:   3,
		Budget:        20000,
	}
}

func TestValidateAcceptsValidProfile(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}

	full := validProfile()
	full.BodyFat = fptr(24)
	full.NeckCircumference = fptr(33)
	full.WaistCircumference = fptr(70)
	full.HipCircumference = fptr(95)
	full.Allergies = []string{"우유"}
	if err := full.Validate(); err != nil {
		t.Errorf("fully populated profile rejected: %v", err)
	}
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mutFn func(p *UserProfile)
	}{
		{"age too low", "age", func(p *UserProfile) { p.Age = 9 }},
		{"age too high", "age", func(p *UserProfile) { p.Age = 101 }},
		{"bad gender", "gender", func(p *UserProfile) { p.Gender = "other" }},
		{"height too low", "height", func(p *UserProfile) { p.Height = 99 }},
		{"height too high", "height", func(p *UserProfile) { p.Height = 221 }},
		{"weight too low", "weight", func(p *UserProfile) { p.Weight = 29 }},
		{"weight too high", "weight", func(p *UserProfile) { p.Weight = 201 }},
		{"bodyFat too low", "bodyFat", func(p *UserProfile) { p.BodyFat = fptr(4) }},
		{"bodyFat too high", "bodyFat", func(p *UserProfile) { p.BodyFat = fptr(51) }},
		{"bad goal", "goal", func(p *UserProfile) { p.Goal = "bulk" }},
		{"bad activity", "activityLevel", func(p *UserProfile) { p.ActivityLevel = "extreme" }},
		{"mealsPerDay too low", "mealsPerDay", func(p *UserProfile) { p.MealsPerDay = 1 }},
		{"mealsPerDay too high", "mealsPerDay", func(p *UserProfile) { p.MealsPerDay = 4 }},
		{"budget too low", "budget", func(p *UserProfile) { p.Budget = 4999 }},
		{"budget too high", "budget", func(p *UserProfile) { p.Budget = 100001 }},
		{"neck too small", "neckCircumference", func(p *UserProfile) { p.NeckCircumference = fptr(19) }},
		{"waist too large", "waistCircumference", func(p *UserProfile) { p.WaistCircumference = fptr(201) }},
		{"hip too small", "hipCircumference", func(p *UserProfile) { p.HipCircumference = fptr(49) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutFn(p)

			err := p.Validate()
			var ipe *InvalidProfileError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected InvalidProfileError, got %v", err)
			}
			found := false
			for _, fe := range ipe.Fields {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a field error for %q, got %+v", tc.field, ipe.Fields)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	p := validProfile()
	p.Age = 0
	p.Height = 0
	p.Budget = 0

	err := p.Validate()
	var ipe *InvalidProfileError
	if !errors.As(err, &ipe) {
		t.Fatalf("expected InvalidProfileError, got %v", err)
	}
	if len(ipe.Fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %+v", len(ipe.Fields), ipe.Fields)
	}
}

func TestHasCircumferences(t *testing.T) {
	male := validProfile()
	male.Gender = GenderMale
	male.NeckCircumference = fptr(38)
	male.WaistCircumference = fptr(84)
	if !male.HasCircumferences() {
		t.Error("male with neck+waist should qualify")
	}

	female := validProfile()
	female.NeckCircumference = fptr(33)
	female.WaistCircumference = fptr(70)
	if female.HasCircumferences() {
		t.Error("female without hip should not qualify")
	}
	female.HipCircumference = fptr(95)
	if !female.HasCircumferences() {
		t.Error("female with neck+waist+hip should qualify")
	}

	none := validProfile()
	if none.HasCircumferences() {
		t.Error("no measurements should not qualify")
	}
}
