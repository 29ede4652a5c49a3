package export

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/menufacil/backend/internal/model"
)

// ErrExportInProgress is returned when an export is requested while one
// is already running. In-flight exports are never aborted, only prevented
// from starting twice.
var ErrExportInProgress = errors.New("export: document export already in progress")

// ErrNoRenderer is returned when no rendering collaborator is configured.
var ErrNoRenderer = errors.New("export: no block renderer configured")

// Image is one rendered page block with its pixel dimensions.
type Image struct {
	PNG      []byte
	WidthPx  int
	HeightPx int
}

// BlockRenderer renders one structured HTML block to a fixed-width
// image. It is the narrow contract to the external rendering engine; the
// service around it only does template assembly and pagination math.
type BlockRenderer interface {
	Render(ctx context.Context, html string, widthPx int) (Image, error)
}

// Page is one assembled output page.
type Page struct {
	Image     Image
	Landscape bool
	// OffsetY shifts the image up when one tall image spans several
	// pages (shopping-list slicing).
	OffsetY float64
}

// Document is the assembled, paginated export.
type Document struct {
	Pages []Page
}

// Service builds export documents. A single busy flag keeps the export
// single-flight.
type Service struct {
	renderer BlockRenderer
	log      *zap.SugaredLogger
	busy     atomic.Bool
}

// NewService wires the export service to its renderer. renderer may be
// nil; Export then fails with ErrNoRenderer.
func NewService(renderer BlockRenderer, log *zap.SugaredLogger) *Service {
	return &Service{renderer: renderer, log: log}
}

// Busy reports whether an export is currently running.
func (s *Service) Busy() bool { return s.busy.Load() }

// Export renders the plan's day-grid pages followed by the sliced
// shopping-list pages. A second call while one runs is rejected with
// ErrExportInProgress; the busy flag clears on completion or failure.
func (s *Service) Export(ctx context.Context, plan model.MenuPlan, groups []model.CategoryGroup) (*Document, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer s.busy.Store(false)

	if s.renderer == nil {
		return nil, ErrNoRenderer
	}

	doc, err := s.build(ctx, plan, groups)
	if err != nil {
		s.log.Errorw("document export failed", "error", err)
		return nil, fmt.Errorf("export: %w", err)
	}
	return doc, nil
}

func (s *Service) build(ctx context.Context, plan model.MenuPlan, groups []model.CategoryGroup) (*Document, error) {
	var doc Document

	for _, bounds := range DayPages(len(plan), DaysPerPage) {
		html, err := renderTemplate(menuPageTemplate, plan[bounds[0]:bounds[1]])
		if err != nil {
			return nil, err
		}
		img, err := s.renderer.Render(ctx, html, menuBlockWidthPx)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, Page{Image: img, Landscape: true})
	}

	html, err := renderTemplate(listPageTemplate, groups)
	if err != nil {
		return nil, err
	}
	img, err := s.renderer.Render(ctx, html, listBlockWidthPx)
	if err != nil {
		return nil, err
	}
	height := ScaledHeight(img.WidthPx, img.HeightPx, PageWidthPortrait-2*PageMargin)
	for _, offset := range ListSlices(height, PageHeightPortrait, PageMargin) {
		doc.Pages = append(doc.Pages, Page{Image: img, OffsetY: offset})
	}

	return &doc, nil
}

// Rendering widths in pixels at ~96 DPI: A4 landscape for the day grid,
// a narrower portrait column layout for the list.
const (
	menuBlockWidthPx = 1123
	listBlockWidthPx = 800
)

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render block template: %w", err)
	}
	return b.String(), nil
}

var menuPageTemplate = template.Must(template.New("menu-page").Parse(`<div class="page menu-grid">
{{range .}}<div class="day-card">
<h3>Día {{.Index}} — {{.Date}}</h3>
<div class="occasion"><h4>Comida</h4>
{{if .Lunch}}<p>{{.Lunch.Primary.Name}}</p>{{if .Lunch.Secondary}}<p>{{.Lunch.Secondary.Name}}</p>{{end}}{{else}}<p class="empty">No planificado</p>{{end}}
</div>
<div class="occasion"><h4>Cena</h4>
{{if .Dinner}}<p>{{.Dinner.Primary.Name}}</p>{{if .Dinner.Secondary}}<p>{{.Dinner.Secondary.Name}}</p>{{end}}{{else}}<p class="empty">No planificado</p>{{end}}
</div>
</div>
{{end}}</div>
`))

var listPageTemplate = template.Must(template.New("list-page").Parse(`<div class="page shopping-columns">
<h1>Lista de la Compra</h1>
{{range .}}<div class="category">
<h3>{{.Category}}</h3>
<ul>
{{range .Items}}<li><span class="box"></span><span class="name">{{.Name}}</span><span class="qty">{{.Quantity}} {{.Unit}}</span></li>
{{end}}</ul>
</div>
{{end}}</div>
`))
