package grocery

import (
	"fmt"

	"nutritrack/internal/pantry"
)

// ReconcilePantry subtracts on-hand pantry quantities from the needed
// amounts. An ingredient fully covered by the pantry is removed; a partially
// covered one keeps the remainder and gains an availability note. Quantities
// are compared without unit conversion, which assumes pantry entries use the
// same unit as the plan; the note records the pantry unit so the assumption
// is visible in output.
func ReconcilePantry(items []ConsolidatedIngredient, onHand []pantry.Item) []ConsolidatedIngredient {
	byKey := make(map[string]pantry.Item, len(onHand))
	for _, p := range onHand {
		byKey[p.Key()] = p
	}

	out := make([]ConsolidatedIngredient, 0, len(items))
	for _, item := range items {
		p, ok := byKey[item.Key]
		if !ok || p.Quantity <= 0 {
			out = append(out, item)
			continue
		}
		if p.Quantity >= item.TotalAmount {
			continue
		}
		item.TotalAmount -= p.Quantity
		item.Note = fmt.Sprintf("have %g %s in pantry", p.Quantity, p.Unit)
		out = append(out, item)
	}
	return out
}
