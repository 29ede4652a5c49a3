package shopping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menufacil/backend/internal/model"
)

var formatGroupsFixture = []model.CategoryGroup{
	{Category: "Frutas y Verduras", Items: []model.ShoppingItem{
		{Name: "Tomate", Quantity: 1.5, Unit: "kg"},
		{Name: "Cebolla", Quantity: 2, Unit: "unidades"},
	}},
	{Category: "Otros", Items: []model.ShoppingItem{
		{Name: "Papel de horno", Quantity: 1, Unit: "unidades", Checked: true},
	}},
}

func TestFormatAsText(t *testing.T) {
	got := FormatAsText(formatGroupsFixture)
	want := "## Frutas y Verduras\n" +
		"- Tomate (1.5 kg)\n" +
		"- Cebolla (2 unidades)\n\n" +
		"## Otros\n" +
		"- Papel de horno (1 unidades)"
	assert.Equal(t, want, got)
}

func TestFormatAsMarkdownChecklist(t *testing.T) {
	got := FormatAsMarkdown(formatGroupsFixture)

	assert.True(t, strings.HasPrefix(got, "# Lista de la Compra\n\n"))
	assert.Equal(t, 2, strings.Count(got, "- [ ]"), "unchecked items render empty boxes")
	assert.Equal(t, 1, strings.Count(got, "- [x]"), "checked items render marked boxes")
	assert.Contains(t, got, "- [x] Papel de horno (1 unidades)")
}

func TestFormatAsMarkdownAllUnchecked(t *testing.T) {
	items := []model.ShoppingItem{
		{Name: "Tomate", Quantity: 3, Unit: "kg"},
		{Name: "Pollo", Quantity: 1, Unit: "kg"},
		{Name: "Sal", Quantity: 2, Unit: "pizcas"},
	}
	got := FormatAsMarkdown(Group(items))
	assert.Equal(t, len(items), strings.Count(got, "- [ ]"), "one checkbox line per flat item")
	assert.NotContains(t, got, "[x]")
}

func TestFormatQuantityDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "2", formatQuantity(2))
	assert.Equal(t, "1.5", formatQuantity(1.5))
	assert.Equal(t, "0.25", formatQuantity(0.25))
}

func TestHTMLDocument(t *testing.T) {
	doc, err := HTMLDocument(formatGroupsFixture)
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "<h2>Frutas y Verduras</h2>")
	assert.Contains(t, doc, `<span class="qty">1.5 kg</span>`)
	assert.Contains(t, doc, `class="done"`)
	assert.Contains(t, doc, "checked", "persisted check state carries into the page")
}
