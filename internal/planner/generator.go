// Package planner implements the menu generation algorithm: randomized,
// constrained dish selection across meal-course structures with a
// no-repeat-in-plan preference and graceful fallback tiers.
package planner

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/menufacil/backend/internal/model"
)

// ErrEmptyCatalog is returned when a plan is requested over an empty
// catalog. Generation requires at least one dish.
var ErrEmptyCatalog = errors.New("planner: catalog is empty")

// Probability thresholds of the selection cascade: a meal is a lone
// single-course dish 25% of the time, otherwise a starter+main pair 66%
// of the time, otherwise a main+dessert pair.
const (
	singleCourseChance = 0.25
	starterMainChance  = 0.66
)

// Source is the random source the generator draws from. *rand.Rand
// satisfies it; tests substitute a scripted source to force exact branch
// selection.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Generator produces menu plans from a dish catalog.
type Generator struct {
	rng Source
}

// New returns a Generator drawing from src. A nil src gets a time-seeded
// rand.Rand.
func New(src Source) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: src}
}

// GeneratePlan builds a numDays-long plan starting at startDate
// (YYYY-MM-DD). One used-set is shared across every occasion of every
// day, so dishes repeat only once novelty is exhausted.
func (g *Generator) GeneratePlan(dishes []model.Dish, numDays int, startDate string) (model.MenuPlan, error) {
	if len(dishes) == 0 {
		return nil, ErrEmptyCatalog
	}
	if numDays < 1 {
		return nil, fmt.Errorf("planner: day count must be at least 1, got %d", numDays)
	}
	base, err := parseLocalDate(startDate)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	plan := make(model.MenuPlan, 0, numDays)
	for i := 0; i < numDays; i++ {
		date := base.AddDate(0, 0, i)
		plan = append(plan, model.DayPlan{
			Index:  i + 1,
			Date:   date.Format("2006-01-02"),
			Lunch:  g.GenerateMeal(dishes, used, model.OccasionLunch),
			Dinner: g.GenerateMeal(dishes, used, model.OccasionDinner),
		})
	}
	return plan, nil
}

// GenerateMeal runs the selection cascade for one occasion. Dishes chosen
// here are added to used immediately, even between the two slots of a
// pair. Returns nil when no dish in the catalog is applicable to the
// occasion ("not planned").
func (g *Generator) GenerateMeal(dishes []model.Dish, used map[string]bool, occ model.Occasion) *model.MealSlot {
	byRole := func(role model.CourseRole) func(model.Dish) bool {
		return func(d model.Dish) bool {
			return d.Course == role && d.ValidForOccasion(occ)
		}
	}

	if g.rng.Float64() < singleCourseChance {
		if single := g.pick(dishes, used, byRole(model.CourseSingle)); single != nil {
			return &model.MealSlot{Primary: *single}
		}
	}

	if g.rng.Float64() < starterMainChance {
		starter := g.pick(dishes, used, byRole(model.CourseStarter))
		main := g.pick(dishes, used, byRole(model.CourseMain))
		if starter != nil && main != nil {
			return &model.MealSlot{Primary: *starter, Secondary: main}
		}
	}

	main := g.pick(dishes, used, byRole(model.CourseMain))
	dessert := g.pick(dishes, used, byRole(model.CourseDessert))
	if main != nil && dessert != nil {
		return &model.MealSlot{Primary: *main, Secondary: dessert}
	}

	if any := g.pick(dishes, used, func(d model.Dish) bool { return d.ValidForOccasion(occ) }); any != nil {
		return &model.MealSlot{Primary: *any}
	}
	return nil
}

// pick selects uniformly among matching dishes not yet used in this plan;
// when every match has been used already, it selects uniformly among all
// matches instead. The chosen dish is marked used before returning.
func (g *Generator) pick(dishes []model.Dish, used map[string]bool, match func(model.Dish) bool) *model.Dish {
	var fresh []model.Dish
	for _, d := range dishes {
		if !used[d.ID] && match(d) {
			fresh = append(fresh, d)
		}
	}
	if len(fresh) > 0 {
		dish := fresh[g.rng.Intn(len(fresh))]
		used[dish.ID] = true
		return &dish
	}

	var all []model.Dish
	for _, d := range dishes {
		if match(d) {
			all = append(all, d)
		}
	}
	if len(all) == 0 {
		return nil
	}
	dish := all[g.rng.Intn(len(all))]
	used[dish.ID] = true
	return &dish
}

// parseLocalDate decomposes YYYY-MM-DD into calendar components and builds
// a local midnight, so day arithmetic never drifts across timezones.
func parseLocalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("planner: invalid start date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}
