package profile

// AllergenTag is an enumerated allergen category declared on a user profile.
type AllergenTag string

const (
	AllergenShellfish AllergenTag = "shellfish"
	AllergenDairy     AllergenTag = "dairy"
	AllergenNuts      AllergenTag = "nuts"
	AllergenGluten    AllergenTag = "gluten"
	AllergenEggs      AllergenTag = "eggs"
	AllergenSoy       AllergenTag = "soy"
	AllergenFish      AllergenTag = "fish"
)

// DietTag is an enumerated dietary restriction declared on a user profile.
type DietTag string

const (
	DietVegan       DietTag = "vegan"
	DietVegetarian  DietTag = "vegetarian"
	DietPescatarian DietTag = "pescatarian"
	DietKeto        DietTag = "keto"
	DietPaleo       DietTag = "paleo"
)

// Preferences holds shopping preference flags.
type Preferences struct {
	PreferOrganic  bool `json:"prefer_organic"`
	PreferGeneric  bool `json:"prefer_generic"`
	AvoidProcessed bool `json:"avoid_processed"`
}

// NutritionGoals holds the user's daily macro targets. The grocery pipeline
// does not consume these; they ride along in the state hub for collaborators.
type NutritionGoals struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// UserProfile is an immutable snapshot of the user's dietary identity for one
// pipeline run.
type UserProfile struct {
	Name                string        `json:"name,omitempty"`
	Allergies           []AllergenTag `json:"allergies"`
	DietaryRestrictions []DietTag     `json:"dietary_restrictions"`
	Preferences         Preferences   `json:"preferences"`
}
