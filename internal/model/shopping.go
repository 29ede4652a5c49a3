package model

// ShoppingItem is one consolidated line of the flat shopping list. Name
// keeps the casing of the first contributing ingredient; the merge key is
// the normalized name plus the unit.
type ShoppingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Checked  bool    `json:"checked"`
}

// CategoryGroup is one purchase category of the grouped shopping list.
// The grouped list is a slice so category order ("Otros" last, the rest
// alphabetical) is part of the value.
type CategoryGroup struct {
	Category string         `json:"category"`
	Items    []ShoppingItem `json:"items"`
}

// CloneShoppingList deep-copies a flat list for archive snapshots.
func CloneShoppingList(items []ShoppingItem) []ShoppingItem {
	if items == nil {
		return nil
	}
	out := make([]ShoppingItem, len(items))
	copy(out, items)
	return out
}
