package grocery

import (
	"testing"

	"nutritrack/internal/profile"
)

func ing(name string) ConsolidatedIngredient {
	return ConsolidatedIngredient{Key: NormalizeKey(name), Name: name, TotalAmount: 1, MealCount: 1}
}

func TestFilterConflicts(t *testing.T) {
	tables := DefaultConflictTables()

	t.Run("ShellfishAllergyDropsShrimp", func(t *testing.T) {
		prof := profile.UserProfile{Allergies: []profile.AllergenTag{profile.AllergenShellfish}}
		kept, applied := FilterConflicts([]ConsolidatedIngredient{ing("Shrimp"), ing("Salmon Fillet")}, prof, tables)

		if len(kept) != 1 || kept[0].Key != "salmon fillet" {
			t.Fatalf("Expected only 'salmon fillet' kept, got %v", kept)
		}
		if len(applied) != 1 || applied[0] != "allergy:shellfish" {
			t.Errorf("Expected applied filters [allergy:shellfish], got %v", applied)
		}
	})

	t.Run("SubstringMatchIsConservative", func(t *testing.T) {
		prof := profile.UserProfile{Allergies: []profile.AllergenTag{profile.AllergenShellfish}}
		kept, _ := FilterConflicts([]ConsolidatedIngredient{ing("Shrimp Paste")}, prof, tables)
		if len(kept) != 0 {
			t.Errorf("Expected 'shrimp paste' dropped by substring match, got %v", kept)
		}
	})

	t.Run("VeganDropsAnimalProducts", func(t *testing.T) {
		prof := profile.UserProfile{DietaryRestrictions: []profile.DietTag{profile.DietVegan}}
		items := []ConsolidatedIngredient{ing("Chicken Breast"), ing("Cheddar Cheese"), ing("Eggs"), ing("Quinoa")}
		kept, _ := FilterConflicts(items, prof, tables)
		if len(kept) != 1 || kept[0].Key != "quinoa" {
			t.Errorf("Expected only 'quinoa' kept for vegan profile, got %v", kept)
		}
	})

	t.Run("NoDeclaredRestrictionsKeepsEverything", func(t *testing.T) {
		kept, applied := FilterConflicts([]ConsolidatedIngredient{ing("Shrimp"), ing("Milk")}, profile.UserProfile{}, tables)
		if len(kept) != 2 {
			t.Errorf("Expected everything kept, got %v", kept)
		}
		if len(applied) != 0 {
			t.Errorf("Expected no filters applied, got %v", applied)
		}
	})

	t.Run("InjectedTables", func(t *testing.T) {
		custom := ConflictTables{
			Allergens: map[profile.AllergenTag][]string{"nightshade": {"tomato", "eggplant"}},
		}
		prof := profile.UserProfile{Allergies: []profile.AllergenTag{"nightshade"}}
		kept, _ := FilterConflicts([]ConsolidatedIngredient{ing("Tomato"), ing("Rice")}, prof, custom)
		if len(kept) != 1 || kept[0].Key != "rice" {
			t.Errorf("Expected custom table to drop 'tomato', got %v", kept)
		}
	})
}
