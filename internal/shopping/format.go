package shopping

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/menufacil/backend/internal/model"
)

// formatQuantity renders quantities without trailing zeros (2, 1.5, 0.25).
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatGroups(groups []model.CategoryGroup, line func(model.ShoppingItem) string) string {
	sections := make([]string, 0, len(groups))
	for _, g := range groups {
		var b strings.Builder
		fmt.Fprintf(&b, "## %s\n", g.Category)
		for i, item := range g.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(line(item))
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

// FormatAsText renders the grouped list as plain bulleted text.
func FormatAsText(groups []model.CategoryGroup) string {
	return formatGroups(groups, func(item model.ShoppingItem) string {
		return fmt.Sprintf("- %s (%s %s)", item.Name, formatQuantity(item.Quantity), item.Unit)
	})
}

// FormatAsMarkdown renders the grouped list as a Markdown checklist, with
// checkbox state taken from each item's Checked flag.
func FormatAsMarkdown(groups []model.CategoryGroup) string {
	return "# Lista de la Compra\n\n" + formatGroups(groups, func(item model.ShoppingItem) string {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		return fmt.Sprintf("- [%s] %s (%s %s)", mark, item.Name, formatQuantity(item.Quantity), item.Unit)
	})
}

var htmlDocTemplate = template.Must(template.New("shopping-list").Funcs(template.FuncMap{
	"qty": formatQuantity,
}).Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Lista de la Compra</title>
<style>
body { font-family: sans-serif; background: #f8fafc; color: #1e293b; margin: 0; padding: 2rem 1rem; }
main { max-width: 42rem; margin: 0 auto; background: #fff; padding: 1.5rem; border-radius: 0.75rem; box-shadow: 0 4px 12px rgba(0,0,0,.08); }
h1 { border-bottom: 1px solid #e2e8f0; padding-bottom: 1rem; }
h2 { color: #4338ca; border-bottom: 2px solid #c7d2fe; padding-bottom: .5rem; }
ul { list-style: none; padding: 0; }
li { display: flex; align-items: center; padding: .5rem; border-radius: .5rem; cursor: pointer; }
li.done span { color: #94a3b8; }
li.done .name { text-decoration: line-through; }
li input { margin-right: 1rem; }
.name { flex-grow: 1; text-transform: capitalize; }
.qty { font-weight: 500; color: #475569; }
</style>
</head>
<body>
<main>
<h1>Lista de la Compra</h1>
{{range .}}<section>
<h2>{{.Category}}</h2>
<ul>
{{range .Items}}<li{{if .Checked}} class="done"{{end}}><input type="checkbox"{{if .Checked}} checked{{end}}><span class="name">{{.Name}}</span><span class="qty">{{qty .Quantity}} {{.Unit}}</span></li>
{{end}}</ul>
</section>
{{end}}</main>
<script>
document.querySelectorAll('li').forEach(function (li) {
  li.addEventListener('click', function (ev) {
    var box = li.querySelector('input');
    if (ev.target !== box) box.checked = !box.checked;
    li.classList.toggle('done', box.checked);
  });
});
</script>
</body>
</html>
`))

// HTMLDocument renders the grouped list as a standalone interactive HTML
// page. Checkbox toggles are client-side only and never persist back.
func HTMLDocument(groups []model.CategoryGroup) (string, error) {
	var b strings.Builder
	if err := htmlDocTemplate.Execute(&b, groups); err != nil {
		return "", fmt.Errorf("shopping: render html document: %w", err)
	}
	return b.String(), nil
}
