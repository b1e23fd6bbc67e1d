package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ksaeil2001/capss/internal/domain"
)

// allergyList accepts the two shapes clients send for allergies: a JSON array
// of strings, or one comma-separated string. Either way it normalizes to an
// ordered list before the profile reaches the engine.
type allergyList []string

func (a *allergyList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = nil
		return nil
	}

	var asList []string
	if err := json.Unmarshal(b, &asList); err == nil {
		*a = asList
		return nil
	}

	var asString string
	if err := json.Unmarshal(b, &asString); err != nil {
		return fmt.Errorf("allergies must be a string or an array of strings")
	}
	if strings.TrimSpace(asString) == "" {
		*a = nil
		return nil
	}

	parts := strings.Split(asString, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*a = out
	return nil
}

// recommendRequest is the request body for /api/recommend and /api/summary.
// Field names and bounds are the wire contract; validation happens on the
// domain profile after normalization.
type recommendRequest struct {
	Age           int         `json:"age"`
	Gender        string      `json:"gender"`
	Height        float64     `json:"height"`
	Weight        float64     `json:"weight"`
	BodyFat       *float64    `json:"bodyFat"`
	Goal          string      `json:"goal"`
	ActivityLevel string      `json:"activityLevel"`
	MealsPerDay   int         `json:"mealsPerDay"`
	Allergies     allergyList `json:"allergies"`
	Budget        int         `json:"budget"`

	NeckCircumference  *float64 `json:"neckCircumference"`
	WaistCircumference *float64 `json:"waistCircumference"`
	HipCircumference   *float64 `json:"hipCircumference"`
}

func (r *recommendRequest) profile() *domain.UserProfile {
	return &domain.UserProfile{
		Age:                r.Age,
		Gender:             domain.Gender(r.Gender),
		Height:             r.Height,
		Weight:             r.Weight,
		BodyFat:            r.BodyFat,
		Goal:               domain.Goal(r.Goal),
		ActivityLevel:      domain.ActivityLevel(r.ActivityLevel),
		MealsPerDay:        r.MealsPerDay,
		Allergies:          r.Allergies,
		Budget:             r.Budget,
		NeckCircumference:  r.NeckCircumference,
		WaistCircumference: r.WaistCircumference,
		HipCircumference:   r.HipCircumference,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
