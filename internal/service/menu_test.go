package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menufacil/backend/internal/model"
	"github.com/menufacil/backend/internal/planner"
)

func newTestMenu(t *testing.T) *MenuService {
	t.Helper()
	return NewMenuService(newTestCatalog(t), planner.New(nil), testLogger())
}

// snapshotPlan builds a deterministic one-day plan out of catalog entries
// so mutation tests do not depend on random generation.
func snapshotPlan(t *testing.T, catalog *CatalogService) model.MenuPlan {
	t.Helper()
	starter, err := catalog.Get("default-ensalada")
	require.NoError(t, err)
	main, err := catalog.Get("default-pollo-asado")
	require.NoError(t, err)
	return model.MenuPlan{{
		Index: 1,
		Date:  "2024-01-01",
		Lunch: &model.MealSlot{Primary: starter, Secondary: &main},
	}}
}

func TestGenerateProducesPlanAndList(t *testing.T) {
	svc := newTestMenu(t)

	plan, err := svc.Generate(3, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, plan, 3)

	current, flat, grouped := svc.Current()
	assert.Len(t, current, 3)
	assert.NotEmpty(t, flat, "defaults always yield at least one lunch dish")
	assert.NotEmpty(t, grouped)
	for _, item := range flat {
		assert.False(t, item.Checked, "a fresh list starts unchecked")
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	catalog := newTestCatalog(t)
	catalog.RemoveAll()
	svc := NewMenuService(catalog, planner.New(nil), testLogger())

	_, err := svc.Generate(2, "2024-01-01")
	assert.ErrorIs(t, err, planner.ErrEmptyCatalog)
}

func TestCurrentWithoutPlan(t *testing.T) {
	svc := newTestMenu(t)
	plan, flat, grouped := svc.Current()
	assert.Nil(t, plan)
	assert.Empty(t, flat)
	assert.Empty(t, grouped)
}

func TestMutationsRequireAPlan(t *testing.T) {
	svc := newTestMenu(t)

	assert.ErrorIs(t, svc.RegenerateMeal(1, model.OccasionLunch), ErrNoPlan)
	assert.ErrorIs(t, svc.RemoveDish(1, model.OccasionLunch, SlotPrimary), ErrNoPlan)
	assert.ErrorIs(t, svc.SwapDish(1, model.OccasionLunch, SlotPrimary, "default-flan"), ErrNoPlan)
}

func TestDayIndexOutOfRange(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	assert.ErrorIs(t, svc.RegenerateMeal(0, model.OccasionLunch), ErrNotFound)
	assert.ErrorIs(t, svc.RegenerateMeal(2, model.OccasionLunch), ErrNotFound)
}

func TestRemoveDishPromotesSecondary(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	require.NoError(t, svc.RemoveDish(1, model.OccasionLunch, SlotPrimary))
	plan, _, _ := svc.Current()
	require.NotNil(t, plan[0].Lunch)
	assert.Equal(t, "default-pollo-asado", plan[0].Lunch.Primary.ID)
	assert.Nil(t, plan[0].Lunch.Secondary)

	require.NoError(t, svc.RemoveDish(1, model.OccasionLunch, SlotPrimary))
	plan, flat, _ := svc.Current()
	assert.Nil(t, plan[0].Lunch, "removing the last dish leaves the meal unplanned")
	assert.Empty(t, flat)

	assert.ErrorIs(t, svc.RemoveDish(1, model.OccasionLunch, SlotPrimary), ErrNotFound)
}

func TestRemoveSecondaryKeepsPrimary(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	require.NoError(t, svc.RemoveDish(1, model.OccasionLunch, SlotSecondary))
	plan, _, _ := svc.Current()
	require.NotNil(t, plan[0].Lunch)
	assert.Equal(t, "default-ensalada", plan[0].Lunch.Primary.ID)
	assert.Nil(t, plan[0].Lunch.Secondary)
}

func TestSwapDishTargetsSlot(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	require.NoError(t, svc.SwapDish(1, model.OccasionLunch, SlotSecondary, "default-merluza"))
	plan, _, _ := svc.Current()
	assert.Equal(t, "default-ensalada", plan[0].Lunch.Primary.ID)
	assert.Equal(t, "default-merluza", plan[0].Lunch.Secondary.ID)

	require.NoError(t, svc.SwapDish(1, model.OccasionLunch, SlotPrimary, "default-gazpacho"))
	plan, _, _ = svc.Current()
	assert.Equal(t, "default-gazpacho", plan[0].Lunch.Primary.ID)
	assert.Equal(t, "default-merluza", plan[0].Lunch.Secondary.ID)
}

func TestSwapSingleCourseReplacesWholeMeal(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	require.NoError(t, svc.SwapDish(1, model.OccasionLunch, SlotSecondary, "default-tortilla"))
	plan, _, _ := svc.Current()
	assert.Equal(t, "default-tortilla", plan[0].Lunch.Primary.ID)
	assert.Nil(t, plan[0].Lunch.Secondary, "a single-course dish takes over the meal")
}

func TestSwapIntoUnplannedMeal(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	require.NoError(t, svc.SwapDish(1, model.OccasionDinner, SlotPrimary, "default-merluza"))
	plan, _, _ := svc.Current()
	require.NotNil(t, plan[0].Dinner)
	assert.Equal(t, "default-merluza", plan[0].Dinner.Primary.ID)
}

func TestSwapUnknownDish(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)

	assert.ErrorIs(t, svc.SwapDish(1, model.OccasionLunch, SlotPrimary, "missing"), ErrNotFound)
}

func TestToggleItemDoesNotRecompute(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)
	require.NoError(t, svc.RemoveDish(1, model.OccasionLunch, SlotSecondary))

	_, flat, _ := svc.Current()
	require.NotEmpty(t, flat)
	name := flat[0].Name

	require.NoError(t, svc.ToggleItem(name))
	_, flat, _ = svc.Current()
	assert.True(t, flat[0].Checked)

	require.NoError(t, svc.ToggleItem(name))
	_, flat, _ = svc.Current()
	assert.False(t, flat[0].Checked)

	assert.ErrorIs(t, svc.ToggleItem("No existe"), ErrNotFound)
}

func TestToggleItemFlipsEverySameNameItem(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())

	// Ensalada carries Tomate in unidades, gazpacho in kg; consolidation
	// keeps them as two separate lines sharing one name.
	starter, err := catalog.Get("default-ensalada")
	require.NoError(t, err)
	main, err := catalog.Get("default-gazpacho")
	require.NoError(t, err)
	svc.LoadSnapshot(model.MenuPlan{{
		Index: 1,
		Date:  "2024-01-01",
		Lunch: &model.MealSlot{Primary: starter, Secondary: &main},
	}}, nil)
	require.NoError(t, svc.SwapDish(1, model.OccasionDinner, SlotPrimary, "default-merluza"))

	_, flat, _ := svc.Current()
	tomatoes := make(map[string]bool)
	for _, item := range flat {
		if item.Name == "Tomate" {
			tomatoes[item.Unit] = item.Checked
		}
	}
	require.Len(t, tomatoes, 2, "two Tomate lines with different units")

	require.NoError(t, svc.ToggleItem("Tomate"))
	_, flat, _ = svc.Current()
	for _, item := range flat {
		if item.Name == "Tomate" {
			assert.True(t, item.Checked, "Tomate (%s)", item.Unit)
		} else {
			assert.False(t, item.Checked)
		}
	}

	require.NoError(t, svc.ToggleItem("Tomate"))
	_, flat, _ = svc.Current()
	for _, item := range flat {
		assert.False(t, item.Checked, "%s (%s)", item.Name, item.Unit)
	}
}

func TestMutationResetsCheckedFlags(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())
	svc.LoadSnapshot(snapshotPlan(t, catalog), nil)
	require.NoError(t, svc.SwapDish(1, model.OccasionDinner, SlotPrimary, "default-merluza"))

	_, flat, _ := svc.Current()
	require.NotEmpty(t, flat)
	require.NoError(t, svc.ToggleItem(flat[0].Name))

	require.NoError(t, svc.RegenerateMeal(1, model.OccasionDinner))
	_, flat, _ = svc.Current()
	for _, item := range flat {
		assert.False(t, item.Checked, "recomputation resets check state")
	}
}

func TestLoadSnapshotDeepCopies(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())

	plan := snapshotPlan(t, catalog)
	list := []model.ShoppingItem{{Name: "Tomate", Quantity: 2, Unit: "unidades"}}
	svc.LoadSnapshot(plan, list)

	require.NoError(t, svc.ToggleItem("Tomate"))
	assert.False(t, list[0].Checked, "the caller's slice stays untouched")

	require.NoError(t, svc.RemoveDish(1, model.OccasionLunch, SlotPrimary))
	require.NotNil(t, plan[0].Lunch)
	assert.Equal(t, "default-ensalada", plan[0].Lunch.Primary.ID, "the caller's plan stays untouched")
}

func TestPickerCandidates(t *testing.T) {
	catalog := newTestCatalog(t)
	svc := NewMenuService(catalog, planner.New(nil), testLogger())

	mains := svc.PickerCandidates(model.OccasionDinner, model.CourseMain, "")
	ids := make(map[string]bool)
	for _, d := range mains {
		ids[d.ID] = true
	}
	assert.True(t, ids["default-merluza"])
	assert.True(t, ids["default-pollo-asado"])
	assert.True(t, ids["default-tortilla"], "single-course dishes can stand in for a main")
	assert.False(t, ids["default-flan"])
	assert.False(t, ids["default-lentejas"], "lunch-only dishes are excluded at dinner")

	desserts := svc.PickerCandidates(model.OccasionLunch, model.CourseDessert, "")
	for _, d := range desserts {
		assert.Equal(t, model.CourseDessert, d.Course, "desserts only swap with desserts")
	}

	filtered := svc.PickerCandidates(model.OccasionDinner, model.CourseMain, "merluza")
	require.Len(t, filtered, 1)
	assert.Equal(t, "default-merluza", filtered[0].ID)
}
