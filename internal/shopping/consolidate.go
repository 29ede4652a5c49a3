// Package shopping derives shopping lists from menu plans: consolidation
// of ingredient lines across a plan, categorization into purchase
// buckets, and the plain-text / Markdown / HTML renderings.
package shopping

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/menufacil/backend/internal/model"
)

// nameCollator orders item names case-insensitively with Spanish
// collation rules, matching how the catalog is labelled.
var nameCollator = collate.New(language.Spanish, collate.IgnoreCase)

// Consolidate merges every non-optional ingredient line of the plan into
// a flat shopping list. The merge key is the trimmed, lower-cased name
// plus the unit; quantities accumulate, and the name and unit casing of
// the first occurrence win. No unit conversion is attempted. A nil plan
// yields an empty list.
func Consolidate(plan model.MenuPlan) []model.ShoppingItem {
	merged := make(map[string]*model.ShoppingItem)
	var keys []string

	for _, day := range plan {
		for _, slot := range []*model.MealSlot{day.Lunch, day.Dinner} {
			if slot == nil {
				continue
			}
			dishes := []*model.Dish{&slot.Primary}
			if slot.Secondary != nil {
				dishes = append(dishes, slot.Secondary)
			}
			for _, dish := range dishes {
				for _, ing := range dish.Ingredients {
					if ing.Optional {
						continue
					}
					key := strings.ToLower(strings.TrimSpace(ing.Name)) + "\x00" + ing.Unit
					if item, ok := merged[key]; ok {
						item.Quantity += ing.Quantity
						continue
					}
					merged[key] = &model.ShoppingItem{
						Name:     strings.TrimSpace(ing.Name),
						Quantity: ing.Quantity,
						Unit:     ing.Unit,
					}
					keys = append(keys, key)
				}
			}
		}
	}

	items := make([]model.ShoppingItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, *merged[key])
	}
	sort.SliceStable(items, func(i, j int) bool {
		return nameCollator.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items
}
