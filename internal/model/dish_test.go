package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDish() Dish {
	return Dish{
		Name:     "Arroz a la cubana",
		Course:   CourseSingle,
		ValidFor: []Occasion{OccasionLunch},
		Ingredients: []Ingredient{
			{Name: "Arroz", Quantity: 200, Unit: "gr"},
			{Name: "Huevo", Quantity: 2, Unit: "unidades"},
		},
		Instructions: Instructions{Mode: InstructionsText, Text: "Cocer el arroz y freír los huevos."},
	}
}

func TestDishValidateAcceptsBase(t *testing.T) {
	assert.NoError(t, baseDish().Validate())
}

func TestDishValidateFieldErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Dish)
		wantSub string
	}{
		{"empty name", func(d *Dish) { d.Name = "  " }, "name"},
		{"bad course", func(d *Dish) { d.Course = "tapas" }, "course"},
		{"no occasions", func(d *Dish) { d.ValidFor = nil }, "valid_for"},
		{"bad occasion", func(d *Dish) { d.ValidFor = []Occasion{"brunch"} }, "valid_for"},
		{"bad difficulty", func(d *Dish) { d.Difficulty = "imposible" }, "difficulty"},
		{"zero servings", func(d *Dish) { d.Servings = intPtr(0) }, "servings"},
		{"negative prep", func(d *Dish) { d.PrepMinutes = intPtr(-5) }, "prep_minutes"},
		{"relative url", func(d *Dish) { d.RecipeURL = "/recetas/arroz" }, "recipe_url"},
		{"schemeless url", func(d *Dish) { d.RecipeURL = "example.com/arroz" }, "recipe_url"},
		{"empty ingredient name", func(d *Dish) { d.Ingredients[0].Name = "" }, "ingredients[0].name"},
		{"negative quantity", func(d *Dish) { d.Ingredients[1].Quantity = -1 }, "ingredients[1].quantity"},
		{"unknown unit", func(d *Dish) { d.Ingredients[0].Unit = "puñados" }, "ingredients[0].unit"},
		{"unknown allergen", func(d *Dish) { d.Allergens = []string{"Polen"} }, "allergens"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := baseDish()
			tc.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

func TestDishValidateAcceptsAbsoluteURL(t *testing.T) {
	d := baseDish()
	d.RecipeURL = "https://example.com/recetas/arroz"
	assert.NoError(t, d.Validate())
}

func TestInstructionsValidate(t *testing.T) {
	assert.NoError(t, Instructions{Mode: InstructionsText, Text: "Cocer."}.Validate())
	assert.NoError(t, Instructions{Mode: InstructionsSteps, Steps: []string{"Cocer."}}.Validate())

	assert.Error(t, Instructions{Mode: "video"}.Validate())
	assert.Error(t, Instructions{Mode: InstructionsText, Steps: []string{"Cocer."}}.Validate())
	assert.Error(t, Instructions{Mode: InstructionsSteps, Text: "Cocer."}.Validate())
}

func TestEnsureID(t *testing.T) {
	d := baseDish()
	d.EnsureID()
	first := d.ID
	assert.NotEmpty(t, first)

	d.EnsureID()
	assert.Equal(t, first, d.ID, "an existing id is never replaced")
}

func TestNormalizeFillsLegacyDefaults(t *testing.T) {
	d := Dish{Name: "Antigua"}
	d.Normalize()

	assert.Equal(t, InstructionsText, d.Instructions.Mode)
	assert.NotNil(t, d.Ingredients)
	assert.NotNil(t, d.ValidFor)
}

func TestNormalizeDropsUnknownAllergens(t *testing.T) {
	d := baseDish()
	d.Allergens = []string{"Huevos", "Polen", "Gluten"}
	d.Normalize()
	assert.Equal(t, []string{"Huevos", "Gluten"}, d.Allergens)
}

func TestValidForOccasion(t *testing.T) {
	d := baseDish()
	assert.True(t, d.ValidForOccasion(OccasionLunch))
	assert.False(t, d.ValidForOccasion(OccasionDinner))
}

func TestMenuPlanClone(t *testing.T) {
	sec := baseDish()
	sec.ID = "sec"
	plan := MenuPlan{{
		Index: 1,
		Date:  "2024-01-01",
		Lunch: &MealSlot{Primary: baseDish(), Secondary: &sec},
	}}

	clone := plan.Clone()
	clone[0].Lunch.Secondary = nil
	clone[0].Lunch.Primary.Name = "otro"

	require.NotNil(t, plan[0].Lunch.Secondary)
	assert.NotEqual(t, "otro", plan[0].Lunch.Primary.Name)

	assert.Nil(t, MenuPlan(nil).Clone())
}

func TestUsedDishIDs(t *testing.T) {
	a, b := baseDish(), baseDish()
	a.ID, b.ID = "a", "b"
	plan := MenuPlan{
		{Index: 1, Date: "2024-01-01", Lunch: &MealSlot{Primary: a, Secondary: &b}},
		{Index: 2, Date: "2024-01-02"},
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, plan.UsedDishIDs())
}
