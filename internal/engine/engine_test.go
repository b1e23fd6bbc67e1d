package engine

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/ksaeil2001/capss/internal/catalog"
	"github.com/ksaeil2001/capss/internal/domain"
)

func fptr(v float64) *float64 { return &v }

// maleProfile returns a valid baseline profile without circumference
// measurements; individual tests adjust fields as needed.
func maleProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Age:           30,
		Gender:        domain.GenderMale,
		Height:        175,
		Weight:        70,
		Goal:          domain.GoalMaintain,
		ActivityLevel: domain.ActivityModerate,
		MealsPerDay:   3,
		Budget:        30000,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(catalog.Meals())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func TestNewEmptyCatalog(t *testing.T) {
	if _, err := New(nil); err != domain.ErrEmptyCatalog {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestRecommendDeterminism(t *testing.T) {
	e := newTestEngine(t)
	p := maleProfile()
	p.NeckCircumference = fptr(38)
	p.WaistCircumference = fptr(84)
	p.Allergies = []string{"땅콩"}

	first, err := e.Recommend(p)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	second, err := e.Recommend(p)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same profile produced different results")
	}
}

func TestRecommendInvalidProfile(t *testing.T) {
	e := newTestEngine(t)
	p := maleProfile()
	p.Goal = "bulk"
	p.Age = 5

	rec, err := e.Recommend(p)
	if rec != nil {
		t.Error("expected no partial result for invalid profile")
	}
	if !domain.IsInvalidProfile(err) {
		t.Fatalf("expected InvalidProfileError, got %v", err)
	}
	var ipe *domain.InvalidProfileError
	if !errors.As(err, &ipe) || len(ipe.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %+v", ipe)
	}
}

func TestBodyFatMethodSelection(t *testing.T) {
	p := maleProfile()
	p.NeckCircumference = fptr(38)
	p.WaistCircumference = fptr(84)

	withCirc := estimateBodyComposition(p)
	if !withCirc.Circumference {
		t.Fatal("neck+waist present: expected circumference method")
	}

	// Independent recomputation of the male circumference formula.
	expected := 495/(1.0324-0.19077*math.Log10(84-38)+0.15456*math.Log10(175)) - 450
	if math.Abs(withCirc.BodyFat-expected) > 1e-9 {
		t.Errorf("circumference body fat = %f, want %f", withCirc.BodyFat, expected)
	}

	// Removing the waist forces the BMI-based fallback.
	p.WaistCircumference = nil
	fallback := estimateBodyComposition(p)
	if fallback.Circumference {
		t.Fatal("waist missing: expected BMI fallback")
	}
	bmi := 70.0 / (1.75 * 1.75)
	expectedFallback := 1.2*bmi + 0.23*30 - 10.8*1 - 5.4
	if math.Abs(fallback.BodyFat-expectedFallback) > 1e-9 {
		t.Errorf("fallback body fat = %f, want %f", fallback.BodyFat, expectedFallback)
	}
	if withCirc.BodyFat == fallback.BodyFat {
		t.Error("the two methods should give different values for this profile")
	}
}

func TestBodyFatMethodSelectionFemaleNeedsHip(t *testing.T) {
	p := maleProfile()
	p.Gender = domain.GenderFemale
	p.NeckCircumference = fptr(34)
	p.WaistCircumference = fptr(72)

	if comp := estimateBodyComposition(p); comp.Circumference {
		t.Error("female without hip: expected BMI fallback")
	}

	p.HipCircumference = fptr(96)
	comp := estimateBodyComposition(p)
	if !comp.Circumference {
		t.Fatal("female with neck+waist+hip: expected circumference method")
	}
	expected := 495/(1.29579-0.35004*math.Log10(72+96-34)+0.22100*math.Log10(175)) - 450
	if math.Abs(comp.BodyFat-expected) > 1e-9 {
		t.Errorf("female circumference body fat = %f, want %f", comp.BodyFat, expected)
	}
}

func TestBodyFatClamping(t *testing.T) {
	// waist barely above neck drives the circumference estimate far below 3.
	low := maleProfile()
	low.NeckCircumference = fptr(49)
	low.WaistCircumference = fptr(50)
	if comp := estimateBodyComposition(low); comp.BodyFat != 3 {
		t.Errorf("circumference lower clamp: got %f, want 3", comp.BodyFat)
	}

	// extreme waist/neck ratio drives it above 50.
	high := maleProfile()
	high.NeckCircumference = fptr(20)
	high.WaistCircumference = fptr(200)
	if comp := estimateBodyComposition(high); comp.BodyFat != 50 {
		t.Errorf("circumference upper clamp: got %f, want 50", comp.BodyFat)
	}

	// BMI fallback clamps to [5,50], a different lower bound than the
	// circumference method.
	thin := maleProfile()
	thin.Weight = 30
	thin.Height = 170
	if comp := estimateBodyComposition(thin); comp.BodyFat != 5 {
		t.Errorf("fallback lower clamp: got %f, want 5", comp.BodyFat)
	}

	heavy := maleProfile()
	heavy.Gender = domain.GenderFemale
	heavy.Weight = 200
	heavy.Height = 220
	if comp := estimateBodyComposition(heavy); comp.BodyFat != 50 {
		t.Errorf("fallback upper clamp: got %f, want 50", comp.BodyFat)
	}
}

func TestEnergyChain(t *testing.T) {
	bmr, tdee, target := computeEnergy(60, domain.ActivityModerate, domain.GoalLose)

	if bmr != 1666 {
		t.Errorf("bmr = %f, want 1666", bmr)
	}
	if math.Abs(tdee-2582.3) > 1e-9 {
		t.Errorf("tdee = %f, want 2582.3", tdee)
	}
	if math.Abs(target-2065.84) > 1e-9 {
		t.Errorf("targetCalories = %f, want 2065.84", target)
	}
}

func TestMifflinStJeorIsReferenceOnly(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	got := mifflinStJeorBMR(domain.GenderMale, 70, 175, 30)
	if math.Abs(got-1648.75) > 1e-9 {
		t.Errorf("mifflin BMR = %f, want 1648.75", got)
	}

	// The authoritative chain ignores it entirely: same lean mass, same BMR.
	katch, _, _ := computeEnergy(60, domain.ActivitySedentary, domain.GoalMaintain)
	if katch != 1666 {
		t.Errorf("katch-mcardle BMR = %f, want 1666", katch)
	}
}

func TestMacroSplitRoundTrip(t *testing.T) {
	protein, carbs, fat := macroTargets(2000)

	if protein != 150 {
		t.Errorf("protein = %d, want 150", protein)
	}
	if carbs != 200 {
		t.Errorf("carbs = %d, want 200", carbs)
	}
	if fat != 67 {
		t.Errorf("fat = %d, want 67", fat)
	}

	// Gram targets converted back to calories land within rounding tolerance.
	total := float64(protein*4 + carbs*4 + fat*9)
	if math.Abs(total-2000) > 4.5 {
		t.Errorf("macro calories = %f, want ~2000", total)
	}
}

func TestAllergyAdvisory(t *testing.T) {
	e := newTestEngine(t)

	plain := maleProfile()
	base, err := e.Recommend(plain)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(base.Summary.Recommendations) != 4 {
		t.Fatalf("expected 4 base recommendations, got %d", len(base.Summary.Recommendations))
	}

	allergic := maleProfile()
	allergic.Allergies = []string{"땅콩", "우유"}
	withAllergy, err := e.Recommend(allergic)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	recs := withAllergy.Summary.Recommendations
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations with allergies, got %d", len(recs))
	}
	if recs[4] != "땅콩, 우유 알레르기를 고려한 식단입니다." {
		t.Errorf("unexpected allergy advisory: %q", recs[4])
	}

	// Allergies annotate text only; every numeric field stays identical.
	a, b := base.Summary, withAllergy.Summary
	a.Recommendations, b.Recommendations = nil, nil
	if !reflect.DeepEqual(a, b) {
		t.Error("allergies changed summary values beyond the advisory line")
	}
	for i := range base.Meals {
		if !reflect.DeepEqual(base.Meals[i], withAllergy.Meals[i]) {
			t.Errorf("allergies changed selected meal %d", i)
		}
	}
}

func TestNarrativeMethodPrefix(t *testing.T) {
	e := newTestEngine(t)

	p := maleProfile()
	p.NeckCircumference = fptr(38)
	p.WaistCircumference = fptr(84)
	rec, err := e.Recommend(p)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if !strings.HasPrefix(rec.Summary.NutritionAnalysis, "U.S. Navy 둘레 공식으로 계산한 ") {
		t.Errorf("expected Navy prefix, got %q", rec.Summary.NutritionAnalysis)
	}

	fallback, err := e.Recommend(maleProfile())
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if strings.Contains(fallback.Summary.NutritionAnalysis, "U.S. Navy") {
		t.Errorf("fallback narrative should not mention the Navy method: %q", fallback.Summary.NutritionAnalysis)
	}
	if !strings.HasPrefix(fallback.Summary.NutritionAnalysis, "체지방률은 ") {
		t.Errorf("unexpected narrative start: %q", fallback.Summary.NutritionAnalysis)
	}
}

// TestSummaryIndependentOfSelection verifies the summary totals are the
// prescribed targets from the energy chain, never a sum over the selected
// meals.
func TestSummaryIndependentOfSelection(t *testing.T) {
	e := newTestEngine(t)

	for _, goal := range []domain.Goal{domain.GoalLose, domain.GoalMaintain, domain.GoalGain, domain.GoalMuscle} {
		p := maleProfile()
		p.Goal = goal
		rec, err := e.Recommend(p)
		if err != nil {
			t.Fatalf("Recommend(%s) failed: %v", goal, err)
		}

		comp := estimateBodyComposition(p)
		_, _, target := computeEnergy(comp.LeanBodyMass, p.ActivityLevel, goal)
		protein, carbs, fat := macroTargets(target)

		s := rec.Summary
		if s.TotalCalories != int(math.Round(target)) {
			t.Errorf("%s: totalCalories = %d, want %d", goal, s.TotalCalories, int(math.Round(target)))
		}
		if s.TotalProtein != protein || s.TotalCarbs != carbs || s.TotalFat != fat {
			t.Errorf("%s: macro targets = %d/%d/%d, want %d/%d/%d",
				goal, s.TotalProtein, s.TotalCarbs, s.TotalFat, protein, carbs, fat)
		}
		if s.TotalBudget != p.Budget {
			t.Errorf("%s: totalBudget = %d, want %d", goal, s.TotalBudget, p.Budget)
		}
	}
}

func TestSummarizeMatchesRecommend(t *testing.T) {
	e := newTestEngine(t)
	p := maleProfile()
	p.Goal = domain.GoalMuscle

	rec, err := e.Recommend(p)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	sum, err := e.Summarize(p)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !reflect.DeepEqual(rec.Summary, *sum) {
		t.Error("preview summary disagrees with full recommendation summary")
	}
}
