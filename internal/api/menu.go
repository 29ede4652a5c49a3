package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/menufacil/backend/internal/export"
	"github.com/menufacil/backend/internal/model"
	"github.com/menufacil/backend/internal/planner"
	"github.com/menufacil/backend/internal/service"
	"github.com/menufacil/backend/internal/shopping"
)

// MenuHandler serves menu generation, plan mutations, and the shopping
// list with its exports.
type MenuHandler struct {
	menu     *service.MenuService
	exporter *export.Service
}

func NewMenuHandler(menu *service.MenuService, exporter *export.Service) *MenuHandler {
	return &MenuHandler{menu: menu, exporter: exporter}
}

func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/menu")
	{
		menu.POST("/generate", h.Generate)
		menu.GET("", h.GetCurrent)
		menu.GET("/picker", h.PickerCandidates)
		menu.POST("/export", h.ExportDocument)
		menu.POST("/days/:day/:occasion/regenerate", h.RegenerateMeal)
		menu.PUT("/days/:day/:occasion/:slot", h.SwapDish)
		menu.DELETE("/days/:day/:occasion/:slot", h.RemoveDish)
	}
	list := router.Group("/shopping-list")
	{
		list.GET("", h.GetShoppingList)
		list.POST("/toggle", h.ToggleItem)
		list.GET("/export", h.ExportShoppingList)
	}
}

func (h *MenuHandler) Generate(c *gin.Context) {
	var req struct {
		Days      int    `json:"days" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := h.menu.Generate(req.Days, req.StartDate)
	if err != nil {
		if errors.Is(err, planner.ErrEmptyCatalog) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the dish catalog is empty"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *MenuHandler) GetCurrent(c *gin.Context) {
	plan, list, grouped := h.menu.Current()
	c.JSON(http.StatusOK, gin.H{
		"plan":          plan,
		"shopping_list": list,
		"grouped":       grouped,
	})
}

func (h *MenuHandler) RegenerateMeal(c *gin.Context) {
	day, occ, ok := h.dayAndOccasion(c)
	if !ok {
		return
	}
	if err := h.menu.RegenerateMeal(day, occ); err != nil {
		h.planError(c, err)
		return
	}
	h.GetCurrent(c)
}

func (h *MenuHandler) SwapDish(c *gin.Context) {
	day, occ, ok := h.dayAndOccasion(c)
	if !ok {
		return
	}
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	var req struct {
		DishID string `json:"dish_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.menu.SwapDish(day, occ, slot, req.DishID); err != nil {
		h.planError(c, err)
		return
	}
	h.GetCurrent(c)
}

func (h *MenuHandler) RemoveDish(c *gin.Context) {
	day, occ, ok := h.dayAndOccasion(c)
	if !ok {
		return
	}
	slot, ok := h.slot(c)
	if !ok {
		return
	}
	if err := h.menu.RemoveDish(day, occ, slot); err != nil {
		h.planError(c, err)
		return
	}
	h.GetCurrent(c)
}

// PickerCandidates lists the dishes eligible to replace a slot holding a
// dish of the given course role at the given occasion.
func (h *MenuHandler) PickerCandidates(c *gin.Context) {
	occ, ok := parseOccasion(c.Query("occasion"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "occasion must be lunch or dinner"})
		return
	}
	course := model.CourseRole(c.Query("course"))
	switch course {
	case model.CourseStarter, model.CourseMain, model.CourseSingle, model.CourseDessert:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown course role"})
		return
	}
	dishes := h.menu.PickerCandidates(occ, course, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"dishes": dishes, "total": len(dishes)})
}

func (h *MenuHandler) GetShoppingList(c *gin.Context) {
	_, list, grouped := h.menu.Current()
	c.JSON(http.StatusOK, gin.H{"items": list, "grouped": grouped})
}

func (h *MenuHandler) ToggleItem(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.menu.ToggleItem(req.Name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "shopping list item not found"})
		return
	}
	h.GetShoppingList(c)
}

// ExportShoppingList renders the grouped list as plain text, Markdown, or
// a standalone interactive HTML page.
func (h *MenuHandler) ExportShoppingList(c *gin.Context) {
	_, _, grouped := h.menu.Current()

	switch c.DefaultQuery("format", "text") {
	case "text":
		c.Header("Content-Disposition", `attachment; filename="lista-compra.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(shopping.FormatAsText(grouped)))
	case "markdown":
		c.Header("Content-Disposition", `attachment; filename="lista-compra.md"`)
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(shopping.FormatAsMarkdown(grouped)))
	case "html":
		doc, err := shopping.HTMLDocument(grouped)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render shopping list"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be text, markdown or html"})
	}
}

// ExportDocument builds the paginated printable document. Concurrent
// exports are rejected rather than queued.
func (h *MenuHandler) ExportDocument(c *gin.Context) {
	plan, _, grouped := h.menu.Current()
	if plan == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no menu plan has been generated"})
		return
	}

	doc, err := h.exporter.Export(c.Request.Context(), plan, grouped)
	switch {
	case errors.Is(err, export.ErrExportInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "an export is already in progress"})
	case errors.Is(err, export.ErrNoRenderer):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "document rendering is not configured"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document export failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"pages": len(doc.Pages)})
	}
}

func (h *MenuHandler) dayAndOccasion(c *gin.Context) (int, model.Occasion, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be a positive number"})
		return 0, "", false
	}
	occ, ok := parseOccasion(c.Param("occasion"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "occasion must be lunch or dinner"})
		return 0, "", false
	}
	return day, occ, true
}

func (h *MenuHandler) slot(c *gin.Context) (service.DishSlot, bool) {
	slot := service.DishSlot(c.Param("slot"))
	if slot != service.SlotPrimary && slot != service.SlotSecondary {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be primary or secondary"})
		return "", false
	}
	return slot, true
}

func (h *MenuHandler) planError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoPlan):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no menu plan has been generated"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func parseOccasion(raw string) (model.Occasion, bool) {
	switch model.Occasion(raw) {
	case model.OccasionLunch:
		return model.OccasionLunch, true
	case model.OccasionDinner:
		return model.OccasionDinner, true
	}
	return "", false
}
