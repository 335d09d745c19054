package grocery

import (
	"strings"

	"nutritrack/internal/profile"
)

// ConflictTables maps declared allergen and diet tags to the ingredient-name
// substrings they forbid. The tables are plain data so they can be replaced
// for testing or localization without touching the filter.
type ConflictTables struct {
	Allergens map[profile.AllergenTag][]string
	Diets     map[profile.DietTag][]string
}

// DefaultConflictTables returns the built-in keyword tables. Matching is
// deliberately conservative: a false-positive exclusion costs a grocery item,
// a false negative is a safety failure.
func DefaultConflictTables() ConflictTables {
	return ConflictTables{
		Allergens: map[profile.AllergenTag][]string{
			profile.AllergenShellfish: {"shrimp", "crab", "lobster", "scallop", "clam", "mussel", "oyster"},
			profile.AllergenDairy:     {"milk", "cheese", "butter", "cream", "yogurt"},
			profile.AllergenNuts:      {"almond", "peanut", "cashew", "walnut", "pecan", "pistachio", "hazelnut"},
			profile.AllergenGluten:    {"wheat", "bread", "pasta", "flour", "barley", "rye"},
			profile.AllergenEggs:      {"egg"},
			profile.AllergenSoy:       {"soy", "tofu", "edamame", "tempeh"},
			profile.AllergenFish:      {"salmon", "tuna", "cod", "tilapia", "halibut", "anchov"},
		},
		Diets: map[profile.DietTag][]string{
			profile.DietVegan: {
				"chicken", "beef", "pork", "turkey", "lamb", "bacon",
				"fish", "salmon", "tuna", "shrimp",
				"milk", "cheese", "butter", "cream", "yogurt", "egg", "honey",
			},
			profile.DietVegetarian: {
				"chicken", "beef", "pork", "turkey", "lamb", "bacon",
				"fish", "salmon", "tuna", "shrimp",
			},
			profile.DietPescatarian: {"chicken", "beef", "pork", "turkey", "lamb", "bacon"},
			profile.DietKeto:        {"sugar", "bread", "pasta", "rice", "potato"},
			profile.DietPaleo:       {"bread", "pasta", "rice", "milk", "cheese", "bean", "lentil"},
		},
	}
}

// FilterConflicts drops every ingredient whose normalized name contains a
// forbidden substring for any allergy or restriction the profile declares.
// Dropped ingredients do not reach any downstream stage. The second return
// is the list of filters that were active, for the GroceryList snapshot.
func FilterConflicts(items []ConsolidatedIngredient, prof profile.UserProfile, tables ConflictTables) ([]ConsolidatedIngredient, []string) {
	var applied []string
	for _, tag := range prof.Allergies {
		applied = append(applied, "allergy:"+string(tag))
	}
	for _, tag := range prof.DietaryRestrictions {
		applied = append(applied, "diet:"+string(tag))
	}

	kept := make([]ConsolidatedIngredient, 0, len(items))
	for _, item := range items {
		if conflicts(item.Key, prof, tables) {
			continue
		}
		kept = append(kept, item)
	}
	return kept, applied
}

func conflicts(key string, prof profile.UserProfile, tables ConflictTables) bool {
	for _, tag := range prof.Allergies {
		for _, kw := range tables.Allergens[tag] {
			if strings.Contains(key, kw) {
				return true
			}
		}
	}
	for _, tag := range prof.DietaryRestrictions {
		for _, kw := range tables.Diets[tag] {
			if strings.Contains(key, kw) {
				return true
			}
		}
	}
	return false
}
