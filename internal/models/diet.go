package models

// MealType identifies which meal of the day an entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Macros is a macronutrient breakdown in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Meal is a logged meal with calorie and macro totals.
type Meal struct {
	ID        string   `json:"id"`
	OwnerID   string   `json:"owner_id"`
	MealType  MealType `json:"meal_type"`
	FoodItems []string `json:"food_items"`
	Calories  int      `json:"calories"`
	Macros    Macros   `json:"macros"`
	Notes     string   `json:"notes,omitempty"`
	Timestamp int64    `json:"timestamp"` // epoch ms
}

// SavedMeal is a reusable meal template.
type SavedMeal struct {
	ID        string   `json:"id"`
	OwnerID   string   `json:"owner_id"`
	Name      string   `json:"name"`
	FoodItems []string `json:"food_items"`
	Calories  int      `json:"calories"`
	Macros    Macros   `json:"macros"`
	Notes     string   `json:"notes,omitempty"`
}

// WeightEntry is a single body-weight measurement.
type WeightEntry struct {
	ID        string  `json:"id"`
	OwnerID   string  `json:"owner_id"`
	Weight    float64 `json:"weight"`
	Notes     string  `json:"notes,omitempty"`
	Timestamp int64   `json:"timestamp"` // epoch ms
}

// DietSummary aggregates a day's meals.
type DietSummary struct {
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
}
