package grocery

import (
	"strings"
	"time"
)

// ConsolidatedIngredient is the merged representation of one ingredient
// across every meal of a weekly plan. Key is the normalized (lowercased,
// trimmed) ingredient name and is unique within one pipeline run.
type ConsolidatedIngredient struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	TotalAmount float64  `json:"total_amount"`
	Unit        string   `json:"unit"`
	Category    string   `json:"category"`
	Sources     []string `json:"sources"`
	MealCount   int      `json:"meal_count"`
	// Note carries the pantry availability note, when part of the needed
	// amount is already on hand.
	Note string `json:"note,omitempty"`
}

// List is the immutable output snapshot of one grocery generation run.
// Regeneration produces a fresh List; snapshots are never mutated in place.
type List struct {
	ID                    string                   `json:"id"`
	CreatedAt             time.Time                `json:"created_at"`
	Ingredients           []ConsolidatedIngredient `json:"ingredients"`
	EstimatedCost         float64                  `json:"estimated_cost"`
	DietaryFiltersApplied []string                 `json:"dietary_filters_applied"`
}

// NormalizeKey derives the consolidation key from an ingredient name.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
