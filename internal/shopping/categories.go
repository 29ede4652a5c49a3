package shopping

import (
	"sort"
	"strings"

	"github.com/menufacil/backend/internal/model"
)

// DefaultCategory is the bucket for ingredients no keyword matches. It is
// always ordered last in a grouped list.
const DefaultCategory = "Otros"

type category struct {
	name     string
	keywords []string
}

// Purchase categories and their keyword lists. Categorization is a
// first-substring-match walk over this table, so more specific keywords
// belong in earlier categories.
var categories = []category{
	{"Frutas y Verduras", []string{
		"patata", "cebolla", "tomate", "pimiento", "pepino", "ajo",
		"zanahoria", "guisante", "limón", "calabaza", "puerro", "cilantro",
		"perejil", "aguacate", "piña", "membrillo", "lechuga",
	}},
	{"Carne", []string{"pollo", "gallina", "chorizo", "lomo", "ternera"}},
	{"Pescado y Marisco", []string{"corvina", "merluza", "atún", "pescado"}},
	{"Lácteos y Huevos", []string{"huevo", "leche", "queso", "nata", "mayonesa"}},
	{"Panadería y Repostería", []string{"pan", "harina", "azúcar", "vainilla", "galleta"}},
	{"Despensa y Secos", []string{
		"aceite", "sal", "lenteja", "arroz", "pimienta", "vinagre",
		"pimentón", "tomillo", "nuez", "maíz", "caldo", "aceituna", "soja",
	}},
	{"Bebidas", []string{"vino", "cerveza"}},
}

// Categorize maps an ingredient name to its purchase category: the first
// category whose keyword list contains a substring of the lower-cased
// name wins, otherwise DefaultCategory.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name
			}
		}
	}
	return DefaultCategory
}

// Group partitions a flat list into purchase categories. Categories are
// ordered alphabetically with DefaultCategory forced last; items inside a
// category keep the flat list's order.
func Group(items []model.ShoppingItem) []model.CategoryGroup {
	buckets := make(map[string][]model.ShoppingItem)
	for _, item := range items {
		cat := Categorize(item.Name)
		buckets[cat] = append(buckets[cat], item)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == DefaultCategory {
			return false
		}
		if names[j] == DefaultCategory {
			return true
		}
		return nameCollator.CompareString(names[i], names[j]) < 0
	})

	groups := make([]model.CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, model.CategoryGroup{Category: name, Items: buckets[name]})
	}
	return groups
}
