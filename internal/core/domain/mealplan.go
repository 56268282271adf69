package domain

const (
	TimeFrameDay = "day"

	DefaultTargetCalories = 2000
	MaxTargetCalories     = 20000
)

// Meal is a single suggestion inside a generated meal plan.
type Meal struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ImageType      string `json:"imageType,omitempty"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"sourceUrl"`
}

// Nutrients summarises the whole plan.
type Nutrients struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

// MealPlan is a daily plan generated for a calorie target.
type MealPlan struct {
	TargetCalories int       `json:"targetCalories"`
	TimeFrame      string    `json:"timeFrame"`
	Meals          []Meal    `json:"meals"`
	Nutrients      Nutrients `json:"nutrients"`
}
