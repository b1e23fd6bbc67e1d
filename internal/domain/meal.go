package domain

// Nutrition carries the extended nutrition facts attached to a catalog meal.
// Only calories/protein/carbs/fat are always present; the rest default to zero.
type Nutrition struct {
	Calories     int     `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Sodium       float64 `json:"sodium,omitempty"`
	Sugar        float64 `json:"sugar,omitempty"`
	Fiber        float64 `json:"fiber,omitempty"`
	SaturatedFat float64 `json:"saturatedFat,omitempty"`
}

// Meal is one catalog entry. The type tag (breakfast/lunch/dinner) is
// advisory only; nothing enforces it during selection.
type Meal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Calories    int        `json:"calories"`
	Protein     float64    `json:"protein"`
	Carbs       float64    `json:"carbs"`
	Fat         float64    `json:"fat"`
	Ingredients []string   `json:"ingredients"`
	Recipe      string     `json:"recipe,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Score       int        `json:"score,omitempty"`
	Price       int        `json:"price,omitempty"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
}

// Clone returns a deep copy, so a selected meal can be given its own id
// without touching the shared catalog entry.
func (m Meal) Clone() Meal {
	c := m
	c.Ingredients = append([]string(nil), m.Ingredients...)
	c.Tags = append([]string(nil), m.Tags...)
	if m.Nutrition != nil {
		n := *m.Nutrition
		c.Nutrition = &n
	}
	return c
}
