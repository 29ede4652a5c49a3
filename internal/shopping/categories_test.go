package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menufacil/backend/internal/model"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Tomate frito", "Frutas y Verduras"},
		{"Pechuga de pollo", "Carne"},
		{"Corvina salvaje", "Pescado y Marisco"},
		{"Huevos", "Lácteos y Huevos"},
		{"Harina de trigo", "Panadería y Repostería"},
		{"Aceite de oliva", "Despensa y Secos"},
		{"Vino blanco", "Bebidas"},
		{"Papel de horno", DefaultCategory},
		{"", DefaultCategory},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Categorize(tc.name), "name %q", tc.name)
	}
}

func TestCategorizeIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Categorize("tomate"), Categorize("TOMATE"))
}

func TestGroupPartitionsItems(t *testing.T) {
	items := []model.ShoppingItem{
		{Name: "Pollo", Quantity: 1, Unit: "kg"},
		{Name: "Tomate", Quantity: 3, Unit: "unidades"},
		{Name: "Cuerda de cocina", Quantity: 1, Unit: "unidades"},
		{Name: "Cebolla", Quantity: 2, Unit: "unidades"},
	}

	groups := Group(items)
	require.Len(t, groups, 3)

	assert.Equal(t, "Carne", groups[0].Category)
	assert.Equal(t, "Frutas y Verduras", groups[1].Category)
	assert.Equal(t, DefaultCategory, groups[2].Category, "the default bucket goes last")

	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "Tomate", groups[1].Items[0].Name, "items keep flat-list order inside a group")
	assert.Equal(t, "Cebolla", groups[1].Items[1].Name)

	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	assert.Equal(t, len(items), total, "grouping neither drops nor duplicates items")
}

func TestGroupIsIdempotent(t *testing.T) {
	items := []model.ShoppingItem{
		{Name: "Pollo", Quantity: 1, Unit: "kg"},
		{Name: "Tomate", Quantity: 3, Unit: "unidades"},
		{Name: "Hilo", Quantity: 1, Unit: "unidades"},
	}
	assert.Equal(t, Group(items), Group(items))
}

func TestGroupEmpty(t *testing.T) {
	assert.Empty(t, Group(nil))
}
