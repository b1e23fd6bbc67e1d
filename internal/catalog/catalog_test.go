package catalog

import "testing"

func TestCatalogShape(t *testing.T) {
	meals := Meals()

	if len(meals) != 15 {
		t.Fatalf("catalog has %d meals, want 15", len(meals))
	}
	if Size() != len(meals) {
		t.Errorf("Size() = %d, want %d", Size(), len(meals))
	}

	seen := map[string]bool{}
	for _, m := range meals {
		if seen[m.ID] {
			t.Errorf("duplicate catalog id %q", m.ID)
		}
		seen[m.ID] = true

		if m.Name == "" || m.Type == "" {
			t.Errorf("%s: missing name or type", m.ID)
		}
		if m.Calories <= 0 || m.Protein <= 0 || m.Carbs <= 0 || m.Fat <= 0 {
			t.Errorf("%s: incomplete nutrition facts", m.ID)
		}
		if len(m.Ingredients) == 0 {
			t.Errorf("%s: no ingredients", m.ID)
		}
		if m.Price <= 0 || m.Score <= 0 || m.Score > 100 {
			t.Errorf("%s: price/score out of range (%d, %d)", m.ID, m.Price, m.Score)
		}
		if m.Nutrition == nil {
			t.Errorf("%s: missing extended nutrition", m.ID)
			continue
		}
		if m.Nutrition.Calories != m.Calories || m.Nutrition.Protein != m.Protein {
			t.Errorf("%s: extended nutrition disagrees with top-level facts", m.ID)
		}
	}
}

// Meals must hand out independent copies: mutating a returned meal, its
// ingredient slice, or its nutrition must not leak into later calls.
func TestMealsReturnsCopies(t *testing.T) {
	first := Meals()
	first[0].ID = "mutated"
	first[0].Ingredients[0] = "mutated"
	first[0].Nutrition.Calories = -1

	second := Meals()
	if second[0].ID == "mutated" {
		t.Error("meal id mutation leaked into the catalog")
	}
	if second[0].Ingredients[0] == "mutated" {
		t.Error("ingredient mutation leaked into the catalog")
	}
	if second[0].Nutrition.Calories == -1 {
		t.Error("nutrition mutation leaked into the catalog")
	}
}
