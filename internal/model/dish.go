package model

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// CourseRole is a dish's structural position within a meal.
type CourseRole string

const (
	CourseStarter CourseRole = "starter"
	CourseMain    CourseRole = "main"
	CourseSingle  CourseRole = "single"
	CourseDessert CourseRole = "dessert"
)

// Occasion is one of the two daily meal moments.
type Occasion string

const (
	OccasionLunch  Occasion = "lunch"
	OccasionDinner Occasion = "dinner"
)

// Difficulty levels a dish can carry.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IngredientUnits is the closed vocabulary of measuring units.
var IngredientUnits = []string{
	"gr", "kg", "ml", "l", "unidades", "cucharadas", "cucharaditas", "tazas", "pizcas",
}

// AllergenNames is the closed vocabulary of allergen tags (the 14 EU
// declarable allergens, as labelled in the catalog).
var AllergenNames = []string{
	"Gluten", "Crustáceos", "Huevos", "Pescado", "Cacahuetes", "Soja",
	"Lácteos", "Frutos de cáscara", "Apio", "Mostaza", "Sésamo",
	"Sulfitos", "Moluscos", "Altramuces",
}

const (
	InstructionsText  = "text"
	InstructionsSteps = "steps"
)

// Instructions is a tagged union: either a single free-text block or an
// ordered list of steps, selected by Mode. The two payloads are mutually
// exclusive.
type Instructions struct {
	Mode  string   `json:"mode"`
	Text  string   `json:"text,omitempty"`
	Steps []string `json:"steps,omitempty"`
}

// Validate checks the mode tag and that only the matching payload is set.
func (in Instructions) Validate() error {
	switch in.Mode {
	case InstructionsText:
		if len(in.Steps) > 0 {
			return fmt.Errorf("instructions: mode %q must not carry steps", in.Mode)
		}
	case InstructionsSteps:
		if in.Text != "" {
			return fmt.Errorf("instructions: mode %q must not carry text", in.Mode)
		}
	default:
		return fmt.Errorf("instructions: unknown mode %q", in.Mode)
	}
	return nil
}

// Ingredient is a single line of a dish's ingredient list. Optional lines
// (e.g. "salt to taste") are excluded from shopping-list consolidation.
type Ingredient struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	CategoryHint string  `json:"category_hint,omitempty"`
	Optional     bool    `json:"optional,omitempty"`
}

// Dish is a catalog entry. The catalog is the sole owner of dish records;
// generated plans hold copies by value.
type Dish struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Country      string       `json:"country,omitempty"`
	Servings     *int         `json:"servings,omitempty"`
	PrepMinutes  *int         `json:"prep_minutes,omitempty"`
	Difficulty   Difficulty   `json:"difficulty,omitempty"`
	Course       CourseRole   `json:"course"`
	ValidFor     []Occasion   `json:"valid_for"`
	Ingredients  []Ingredient `json:"ingredients"`
	RecipeURL    string       `json:"recipe_url,omitempty"`
	Instructions Instructions `json:"instructions"`
	Allergens    []string     `json:"allergens,omitempty"`
	Utensils     []string     `json:"utensils,omitempty"`
	Suggestions  string       `json:"suggestions,omitempty"`
}

// ValidForOccasion reports whether the dish can be served at the given
// occasion.
func (d Dish) ValidForOccasion(occ Occasion) bool {
	for _, v := range d.ValidFor {
		if v == occ {
			return true
		}
	}
	return false
}

// EnsureID assigns a fresh uuid when the dish has none.
func (d *Dish) EnsureID() {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
}

// Validate enforces the catalog invariants. Field errors name the field so
// handlers can surface them inline.
func (d Dish) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name: must not be empty")
	}
	switch d.Course {
	case CourseStarter, CourseMain, CourseSingle, CourseDessert:
	default:
		return fmt.Errorf("course: unknown course role %q", d.Course)
	}
	if len(d.ValidFor) == 0 {
		return fmt.Errorf("valid_for: must include at least one occasion")
	}
	for _, occ := range d.ValidFor {
		if occ != OccasionLunch && occ != OccasionDinner {
			return fmt.Errorf("valid_for: unknown occasion %q", occ)
		}
	}
	if d.Difficulty != "" {
		switch d.Difficulty {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			return fmt.Errorf("difficulty: unknown difficulty %q", d.Difficulty)
		}
	}
	if d.Servings != nil && *d.Servings <= 0 {
		return fmt.Errorf("servings: must be positive")
	}
	if d.PrepMinutes != nil && *d.PrepMinutes <= 0 {
		return fmt.Errorf("prep_minutes: must be positive")
	}
	if d.RecipeURL != "" {
		u, err := url.Parse(d.RecipeURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("recipe_url: not a well-formed URL")
		}
	}
	for i, ing := range d.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("ingredients[%d].name: must not be empty", i)
		}
		if ing.Quantity < 0 {
			return fmt.Errorf("ingredients[%d].quantity: must not be negative", i)
		}
		if !validUnit(ing.Unit) {
			return fmt.Errorf("ingredients[%d].unit: unknown unit %q", i, ing.Unit)
		}
	}
	if err := d.Instructions.Validate(); err != nil {
		return err
	}
	for _, a := range d.Allergens {
		if !validAllergen(a) {
			return fmt.Errorf("allergens: unknown allergen %q", a)
		}
	}
	return nil
}

// Normalize is the load-time migration for dishes persisted by older
// versions: it fills defaults for fields added later so consumers never
// need nil guards. Unknown allergen tags are dropped.
func (d *Dish) Normalize() {
	if d.Instructions.Mode == "" {
		d.Instructions.Mode = InstructionsText
	}
	if d.Ingredients == nil {
		d.Ingredients = []Ingredient{}
	}
	if d.ValidFor == nil {
		d.ValidFor = []Occasion{}
	}
	if len(d.Allergens) > 0 {
		kept := d.Allergens[:0]
		for _, a := range d.Allergens {
			if validAllergen(a) {
				kept = append(kept, a)
			}
		}
		d.Allergens = kept
	}
}

func validUnit(unit string) bool {
	for _, u := range IngredientUnits {
		if u == unit {
			return true
		}
	}
	return false
}

func validAllergen(name string) bool {
	for _, a := range AllergenNames {
		if a == name {
			return true
		}
	}
	return false
}
