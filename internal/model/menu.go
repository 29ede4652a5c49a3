package model

import "time"

// MealSlot is one occasion on one day: a required primary dish and an
// optional secondary dish. A single-course primary never carries a
// secondary.
type MealSlot struct {
	Primary   Dish  `json:"primary"`
	Secondary *Dish `json:"secondary,omitempty"`
}

// Clone returns an independent copy of the slot.
func (m *MealSlot) Clone() *MealSlot {
	if m == nil {
		return nil
	}
	out := &MealSlot{Primary: m.Primary}
	if m.Secondary != nil {
		sec := *m.Secondary
		out.Secondary = &sec
	}
	return out
}

// DayPlan is one day of a generated menu. A nil occasion means
// "not planned".
type DayPlan struct {
	Index  int       `json:"index"`
	Date   string    `json:"date"`
	Lunch  *MealSlot `json:"lunch"`
	Dinner *MealSlot `json:"dinner"`
}

// Slot returns the meal slot for the given occasion.
func (d *DayPlan) Slot(occ Occasion) *MealSlot {
	if occ == OccasionDinner {
		return d.Dinner
	}
	return d.Lunch
}

// SetSlot replaces the meal slot for the given occasion.
func (d *DayPlan) SetSlot(occ Occasion, slot *MealSlot) {
	if occ == OccasionDinner {
		d.Dinner = slot
		return
	}
	d.Lunch = slot
}

// MenuPlan is an ordered sequence of day plans covering a contiguous date
// range.
type MenuPlan []DayPlan

// Clone deep-copies the plan so saved snapshots stay independent of later
// edits.
func (p MenuPlan) Clone() MenuPlan {
	if p == nil {
		return nil
	}
	out := make(MenuPlan, len(p))
	for i, day := range p {
		out[i] = DayPlan{
			Index:  day.Index,
			Date:   day.Date,
			Lunch:  day.Lunch.Clone(),
			Dinner: day.Dinner.Clone(),
		}
	}
	return out
}

// UsedDishIDs collects the ids of every dish placed anywhere in the plan.
func (p MenuPlan) UsedDishIDs() map[string]bool {
	used := make(map[string]bool)
	for _, day := range p {
		for _, slot := range []*MealSlot{day.Lunch, day.Dinner} {
			if slot == nil {
				continue
			}
			used[slot.Primary.ID] = true
			if slot.Secondary != nil {
				used[slot.Secondary.ID] = true
			}
		}
	}
	return used
}

// SavedMenu is a named point-in-time snapshot of a plan and its derived
// shopping list. Both are deep copies, never live references.
type SavedMenu struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Plan         MenuPlan       `json:"plan"`
	ShoppingList []ShoppingItem `json:"shopping_list"`
	CreatedAt    time.Time      `json:"created_at"`
}
