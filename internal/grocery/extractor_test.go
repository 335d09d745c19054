package grocery

import (
	"reflect"
	"testing"

	"nutritrack/internal/plan"
)

func twoSalmonPlan() plan.WeeklyPlan {
	return plan.WeeklyPlan{
		Days: []plan.DayPlan{
			{
				Day: "Monday",
				Meals: map[plan.MealSlot]*plan.Meal{
					plan.SlotLunch: {
						Name: "Salmon Bowl",
						Ingredients: []plan.Ingredient{
							{Name: "Salmon Fillet", AmountText: "6 oz", Unit: "oz", Category: "seafood"},
							{Name: "Quinoa", AmountText: "0.5", Unit: "cup", Category: "pantry"},
						},
					},
				},
			},
			{
				Day: "Thursday",
				Meals: map[plan.MealSlot]*plan.Meal{
					plan.SlotDinner: {
						Name: "Baked Salmon",
						Ingredients: []plan.Ingredient{
							{Name: "salmon fillet ", AmountText: "6 oz", Unit: "fillet", Category: "fish"},
						},
					},
				},
			},
		},
	}
}

func TestExtractIngredients(t *testing.T) {
	t.Run("ConsolidatesAcrossMeals", func(t *testing.T) {
		got := ExtractIngredients(twoSalmonPlan())
		if len(got) != 2 {
			t.Fatalf("Expected 2 consolidated ingredients, got %d", len(got))
		}

		salmon := got[0]
		if salmon.Key != "salmon fillet" {
			t.Errorf("Expected key 'salmon fillet', got %q", salmon.Key)
		}
		if salmon.TotalAmount != 12 {
			t.Errorf("Expected total amount 12, got %g", salmon.TotalAmount)
		}
		if salmon.MealCount != 2 {
			t.Errorf("Expected meal count 2, got %d", salmon.MealCount)
		}
		if len(salmon.Sources) != 2 || salmon.Sources[0] != "lunch@Salmon Bowl" || salmon.Sources[1] != "dinner@Baked Salmon" {
			t.Errorf("Unexpected sources: %v", salmon.Sources)
		}
	})

	t.Run("FirstOccurrenceUnitWins", func(t *testing.T) {
		got := ExtractIngredients(twoSalmonPlan())
		if got[0].Unit != "oz" {
			t.Errorf("Expected first-seen unit 'oz', got %q", got[0].Unit)
		}
		if got[0].Category != "seafood" {
			t.Errorf("Expected first-seen category 'seafood', got %q", got[0].Category)
		}
	})

	t.Run("FirstSeenOrderPreserved", func(t *testing.T) {
		got := ExtractIngredients(twoSalmonPlan())
		if got[0].Key != "salmon fillet" || got[1].Key != "quinoa" {
			t.Errorf("Expected order [salmon fillet quinoa], got [%s %s]", got[0].Key, got[1].Key)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := ExtractIngredients(twoSalmonPlan())
		second := ExtractIngredients(twoSalmonPlan())
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Expected identical output on re-run, got %v vs %v", first, second)
		}
	})

	t.Run("SlotOrderWithinDay", func(t *testing.T) {
		p := plan.WeeklyPlan{Days: []plan.DayPlan{{
			Day: "Monday",
			Meals: map[plan.MealSlot]*plan.Meal{
				plan.SlotDinner:    {Name: "Dinner", Ingredients: []plan.Ingredient{{Name: "Rice", AmountText: "1"}}},
				plan.SlotBreakfast: {Name: "Breakfast", Ingredients: []plan.Ingredient{{Name: "Oats", AmountText: "1"}}},
			},
		}}}
		got := ExtractIngredients(p)
		if got[0].Key != "oats" || got[1].Key != "rice" {
			t.Errorf("Expected breakfast before dinner, got [%s %s]", got[0].Key, got[1].Key)
		}
	})

	t.Run("EmptyNameSkipped", func(t *testing.T) {
		p := plan.WeeklyPlan{Days: []plan.DayPlan{{
			Day: "Monday",
			Meals: map[plan.MealSlot]*plan.Meal{
				plan.SlotLunch: {Name: "Lunch", Ingredients: []plan.Ingredient{{Name: "  "}, {Name: "Rice"}}},
			},
		}}}
		got := ExtractIngredients(p)
		if len(got) != 1 || got[0].Key != "rice" {
			t.Errorf("Expected only 'rice', got %v", got)
		}
	})
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"6 oz", 6},
		{"1.5 fillets", 1.5},
		{"2", 2},
		{".5 cup", 0.5},
		{"a pinch", 1},
		{"", 1},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.text); got != tc.want {
			t.Errorf("ParseAmount(%q): expected %g, got %g", tc.text, tc.want, got)
		}
	}
}
