package app

import (
	"time"

	"nutritrack/internal/pantry"
	"nutritrack/internal/plan"
	"nutritrack/internal/profile"
)

// EnableDemoMode resets the hub and seeds it with the demo profile, plan and
// pantry so every pipeline stage has data to chew on.
func (a *App) EnableDemoMode() {
	a.Logout()
	a.hub.SetUserProfile(DemoProfile())
	a.hub.SetMealPlans([]plan.WeeklyPlan{DemoPlan()})
	a.hub.SetPantryItems(DemoPantry())
	a.hub.SetNutritionGoals(profile.NutritionGoals{
		Calories: 2200,
		ProteinG: 140,
		CarbsG:   220,
		FatG:     75,
	})
}

// DemoProfile declares a shellfish allergy so the conflict filter has work
// to do against the demo plan.
func DemoProfile() profile.UserProfile {
	return profile.UserProfile{
		Name:      "Demo User",
		Allergies: []profile.AllergenTag{profile.AllergenShellfish},
		Preferences: profile.Preferences{
			PreferOrganic: true,
		},
	}
}

// DemoPlan is a three-day slice of a week. Salmon appears in two meals so
// consolidation is visible; shrimp appears once and is expected to be
// filtered out by the demo profile's allergy.
func DemoPlan() plan.WeeklyPlan {
	monday := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	return plan.WeeklyPlan{
		WeekStart: monday,
		Days: []plan.DayPlan{
			{
				Day: "Monday",
				Meals: map[plan.MealSlot]*plan.Meal{
					plan.SlotBreakfast: {
						Name: "Overnight Oats",
						Ingredients: []plan.Ingredient{
							{Name: "Oats", AmountText: "1", Unit: "cup", Category: "pantry"},
							{Name: "Milk", AmountText: "1", Unit: "cup", Category: "dairy"},
							{Name: "Blueberries", AmountText: "0.5", Unit: "cup", Category: "produce"},
						},
					},
					plan.SlotLunch: {
						Name: "Grilled Salmon Bowl",
						Ingredients: []plan.Ingredient{
							{Name: "Salmon Fillet", AmountText: "6 oz", Unit: "oz", Category: "seafood"},
							{Name: "Quinoa", AmountText: "0.5", Unit: "cup", Category: "pantry"},
							{Name: "Spinach", AmountText: "2", Unit: "cup", Category: "produce"},
						},
					},
					plan.SlotDinner: {
						Name: "Shrimp Stir Fry",
						Ingredients: []plan.Ingredient{
							{Name: "Shrimp", AmountText: "8 oz", Unit: "oz", Category: "seafood"},
							{Name: "Bell Pepper", AmountText: "1", Unit: "each", Category: "produce"},
							{Name: "Rice", AmountText: "1", Unit: "cup", Category: "pantry"},
						},
					},
					plan.SlotSnacks: {
						Name: "Fruit Plate",
						Ingredients: []plan.Ingredient{
							{Name: "Banana", AmountText: "2", Unit: "each", Category: "produce"},
						},
					},
				},
			},
			{
				Day: "Tuesday",
				Meals: map[plan.MealSlot]*plan.Meal{
					plan.SlotBreakfast: {
						Name: "Veggie Scramble",
						Ingredients: []plan.Ingredient{
							{Name: "Eggs", AmountText: "3", Unit: "each", Category: "dairy"},
							{Name: "Spinach", AmountText: "1", Unit: "cup", Category: "produce"},
							{Name: "Onion", AmountText: "0.5", Unit: "each", Category: "produce"},
						},
					},
					plan.SlotDinner: {
						Name: "Baked Salmon",
						Ingredients: []plan.Ingredient{
							{Name: "Salmon Fillet", AmountText: "6 oz", Unit: "oz", Category: "seafood"},
							{Name: "Sweet Potato", AmountText: "2", Unit: "each", Category: "produce"},
							{Name: "Broccoli", AmountText: "1", Unit: "lb", Category: "produce"},
						},
					},
				},
			},
			{
				Day: "Wednesday",
				Meals: map[plan.MealSlot]*plan.Meal{
					plan.SlotLunch: {
						Name: "Chicken Quinoa Salad",
						Ingredients: []plan.Ingredient{
							{Name: "Chicken Breast", AmountText: "1.5", Unit: "lb", Category: "meat"},
							{Name: "Quinoa", AmountText: "0.5", Unit: "cup", Category: "pantry"},
							{Name: "Tomato", AmountText: "2", Unit: "each", Category: "produce"},
							{Name: "Olive Oil", AmountText: "2", Unit: "tbsp", Category: "pantry"},
						},
					},
					plan.SlotSnacks: {
						Name: "Toast with Almond Butter",
						Ingredients: []plan.Ingredient{
							{Name: "Bread", AmountText: "2", Unit: "slice", Category: "bakery"},
							{Name: "Almond Butter", AmountText: "2", Unit: "tbsp", Category: "pantry"},
						},
					},
				},
			},
		},
	}
}

// DemoPantry has one item that fully covers its ingredient (rice) and one
// that partially covers it (quinoa), so both reconciliation branches show up
// in the demo list.
func DemoPantry() []pantry.Item {
	return []pantry.Item{
		{Name: "Rice", Quantity: 3, Unit: "cup", Category: "pantry"},
		{Name: "Quinoa", Quantity: 0.5, Unit: "cup", Category: "pantry"},
		{Name: "Olive Oil", Quantity: 1, Unit: "tbsp", Category: "pantry"},
	}
}
