package service

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/menufacil/backend/internal/model"
	"github.com/menufacil/backend/internal/planner"
	"github.com/menufacil/backend/internal/shopping"
)

// DishSlot addresses one of the two dishes of a meal slot.
type DishSlot string

const (
	SlotPrimary   DishSlot = "primary"
	SlotSecondary DishSlot = "secondary"
)

// MenuService owns the current menu plan and its derived shopping list.
// The current plan lives in memory only; named snapshots go through the
// archive. Every plan mutation recomputes the flat list from scratch;
// consolidation is cheap and recomputation avoids drift.
type MenuService struct {
	mu      sync.Mutex
	catalog *CatalogService
	gen     *planner.Generator
	log     *zap.SugaredLogger

	plan model.MenuPlan
	list []model.ShoppingItem
}

// NewMenuService wires the menu controller to the catalog and a
// generator.
func NewMenuService(catalog *CatalogService, gen *planner.Generator, log *zap.SugaredLogger) *MenuService {
	return &MenuService{catalog: catalog, gen: gen, log: log}
}

// Generate replaces the current plan with a freshly generated one and
// recomputes the shopping list (all checked flags reset).
func (s *MenuService) Generate(numDays int, startDate string) (model.MenuPlan, error) {
	plan, err := s.gen.GeneratePlan(s.catalog.List(), numDays, startDate)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan
	s.recompute()
	s.log.Infow("menu generated", "days", numDays, "start", startDate)
	return s.plan.Clone(), nil
}

// Current returns the plan, the flat list and the grouped list. A nil
// plan means nothing has been generated.
func (s *MenuService) Current() (model.MenuPlan, []model.ShoppingItem, []model.CategoryGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone(), model.CloneShoppingList(s.list), shopping.Group(s.list)
}

// RegenerateMeal replaces one occasion of one day with a fresh
// generation pass. The used-set is recomputed from the current plan at
// call time, so the slot being replaced still counts as used and repeats
// across the rest of the plan stay discouraged.
func (s *MenuService) RegenerateMeal(dayIndex int, occ model.Occasion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, err := s.day(dayIndex)
	if err != nil {
		return err
	}
	day.SetSlot(occ, s.gen.GenerateMeal(s.catalog.List(), s.plan.UsedDishIDs(), occ))
	s.recompute()
	return nil
}

// SwapDish puts a user-picked dish into the addressed slot. A
// single-course dish replaces the entire meal (dropping any secondary);
// any other dish replaces only the targeted slot.
func (s *MenuService) SwapDish(dayIndex int, occ model.Occasion, slot DishSlot, dishID string) error {
	dish, err := s.catalog.Get(dishID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	day, err := s.day(dayIndex)
	if err != nil {
		return err
	}

	meal := day.Slot(occ)
	switch {
	case meal == nil || dish.Course == model.CourseSingle:
		meal = &model.MealSlot{Primary: dish}
	case slot == SlotSecondary:
		meal = &model.MealSlot{Primary: meal.Primary, Secondary: &dish}
	default:
		meal = &model.MealSlot{Primary: dish, Secondary: meal.Secondary}
	}
	day.SetSlot(occ, meal)
	s.recompute()
	return nil
}

// RemoveDish removes one dish from a slot. Removing the primary promotes
// the secondary when present and clears the meal to "not planned"
// otherwise; removing the secondary simply drops it.
func (s *MenuService) RemoveDish(dayIndex int, occ model.Occasion, slot DishSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, err := s.day(dayIndex)
	if err != nil {
		return err
	}
	meal := day.Slot(occ)
	if meal == nil {
		return ErrNotFound
	}

	switch slot {
	case SlotPrimary:
		if meal.Secondary != nil {
			meal = &model.MealSlot{Primary: *meal.Secondary}
		} else {
			meal = nil
		}
	case SlotSecondary:
		meal = &model.MealSlot{Primary: meal.Primary}
	default:
		return fmt.Errorf("menu: unknown dish slot %q", slot)
	}
	day.SetSlot(occ, meal)
	s.recompute()
	return nil
}

// ToggleItem flips the checked flag on every flat item with the given
// name. Same-name items with different units share one check state. This
// is the one shopping-list mutation that does not recompute.
func (s *MenuService) ToggleItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.list {
		if s.list[i].Name == name {
			s.list[i].Checked = !s.list[i].Checked
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// LoadSnapshot restores a saved plan and list as the current state. The
// inputs are deep-copied so the archive entry stays independent.
func (s *MenuService) LoadSnapshot(plan model.MenuPlan, list []model.ShoppingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan.Clone()
	s.list = model.CloneShoppingList(list)
}

// PickerCandidates lists the dishes a picker may swap into a slot whose
// current dish has the given course role: desserts are only replaceable
// by desserts, everything else also admits single-course dishes. The
// candidates are restricted to the occasion and filtered by search.
func (s *MenuService) PickerCandidates(occ model.Occasion, course model.CourseRole, query string) []model.Dish {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []model.Dish
	for _, d := range s.catalog.List() {
		if !d.ValidForOccasion(occ) {
			continue
		}
		roleOK := d.Course == course
		if course != model.CourseDessert {
			roleOK = roleOK || d.Course == model.CourseSingle
		}
		if !roleOK {
			continue
		}
		if query != "" && !dishMatches(d, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// day returns a pointer into the plan for a 1-based day index. Callers
// hold the mutex.
func (s *MenuService) day(index int) (*model.DayPlan, error) {
	if s.plan == nil {
		return nil, ErrNoPlan
	}
	if index < 1 || index > len(s.plan) {
		return nil, fmt.Errorf("menu: day %d out of range: %w", index, ErrNotFound)
	}
	return &s.plan[index-1], nil
}

// recompute rebuilds the flat list from the plan. Callers hold the mutex.
func (s *MenuService) recompute() {
	s.list = shopping.Consolidate(s.plan)
}
