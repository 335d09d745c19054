package grocery

import (
	"fmt"
	"regexp"
	"strconv"

	"nutritrack/internal/plan"
)

// floatToken matches the first floating-point number in an amount string.
var floatToken = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// ParseAmount extracts the numeric magnitude from free-form amount text
// ("6 oz" -> 6, "1.5 fillets" -> 1.5). Absent or unparseable text defaults
// to 1; the default is never an error for the caller.
func ParseAmount(text string) float64 {
	tok := floatToken.FindString(text)
	if tok == "" {
		return 1
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 1
	}
	return v
}

// ExtractIngredients flattens a weekly plan into consolidated ingredients.
// Iteration is deterministic: days in plan order, slots in canonical order,
// ingredients in declaration order; the output preserves first-seen order.
// Repeat occurrences of a key add their parsed amount, append a
// "slot@mealName" source label and bump MealCount; the first occurrence's
// unit and category win. Running twice on the same plan yields identical
// output.
func ExtractIngredients(p plan.WeeklyPlan) []ConsolidatedIngredient {
	var order []string
	byKey := make(map[string]*ConsolidatedIngredient)

	for _, day := range p.Days {
		for _, slot := range plan.SlotOrder {
			meal := day.Meals[slot]
			if meal == nil {
				continue
			}
			source := fmt.Sprintf("%s@%s", slot, meal.Name)
			for _, ing := range meal.Ingredients {
				key := NormalizeKey(ing.Name)
				if key == "" {
					continue
				}
				amount := ParseAmount(ing.AmountText)
				if existing, ok := byKey[key]; ok {
					existing.TotalAmount += amount
					existing.Sources = append(existing.Sources, source)
					existing.MealCount++
					continue
				}
				byKey[key] = &ConsolidatedIngredient{
					Key:         key,
					Name:        ing.Name,
					TotalAmount: amount,
					Unit:        ing.Unit,
					Category:    ing.Category,
					Sources:     []string{source},
					MealCount:   1,
				}
				order = append(order, key)
			}
		}
	}

	out := make([]ConsolidatedIngredient, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}
