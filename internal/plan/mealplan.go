package plan

import "time"

// MealSlot identifies one of the four meal positions within a day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// SlotOrder is the canonical iteration order for meal slots within a day.
var SlotOrder = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}

// Ingredient is a single ingredient line of a meal, as entered or imported.
// AmountText is free-form ("2", "1.5 fillets", "a pinch"); numeric parsing
// happens downstream.
type Ingredient struct {
	Name       string `json:"name"`
	AmountText string `json:"amount"`
	Unit       string `json:"unit"`
	Category   string `json:"category"`
}

// Meal is a named dish with its ingredient lines.
type Meal struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// DayPlan holds the meals planned for a single day. Slots without a planned
// meal are simply absent from the map.
type DayPlan struct {
	Day   string             `json:"day"`
	Meals map[MealSlot]*Meal `json:"meals"`
}

// WeeklyPlan is a full weekly meal plan. Days preserves date order.
type WeeklyPlan struct {
	ID        int64     `json:"id,omitempty"`
	WeekStart time.Time `json:"week_start"`
	Days      []DayPlan `json:"plan"`
}

// IsEmpty reports whether the plan contains no days at all.
func (p WeeklyPlan) IsEmpty() bool {
	return len(p.Days) == 0
}
