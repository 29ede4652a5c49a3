package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menufacil/backend/internal/service"
)

// ArchiveHandler serves the saved-menu archive.
type ArchiveHandler struct {
	archive *service.ArchiveService
	menu    *service.MenuService
}

func NewArchiveHandler(archive *service.ArchiveService, menu *service.MenuService) *ArchiveHandler {
	return &ArchiveHandler{archive: archive, menu: menu}
}

func (h *ArchiveHandler) RegisterRoutes(router *gin.RouterGroup) {
	menus := router.Group("/menus")
	{
		menus.GET("", h.ListMenus)
		menus.POST("", h.SaveMenu)
		menus.GET("/:id", h.GetMenu)
		menus.POST("/:id/load", h.LoadMenu)
		menus.DELETE("/:id", h.DeleteMenu)
	}
}

func (h *ArchiveHandler) ListMenus(c *gin.Context) {
	menus := h.archive.List()
	c.JSON(http.StatusOK, gin.H{"menus": menus, "total": len(menus)})
}

// SaveMenu snapshots the currently generated plan under a name. Saving
// with no plan (or an empty shopping list) is rejected.
func (h *ArchiveHandler) SaveMenu(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, list, _ := h.menu.Current()
	saved, err := h.archive.Save(req.Name, req.Description, plan, list)
	if err != nil {
		if errors.Is(err, service.ErrNoPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "generate a menu before saving"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save menu"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *ArchiveHandler) GetMenu(c *gin.Context) {
	saved, err := h.archive.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "saved menu not found"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// LoadMenu restores an archived snapshot as the current plan. The archive
// entry stays in place.
func (h *ArchiveHandler) LoadMenu(c *gin.Context) {
	saved, err := h.archive.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "saved menu not found"})
		return
	}
	h.menu.LoadSnapshot(saved.Plan, saved.ShoppingList)
	c.JSON(http.StatusOK, gin.H{"message": "menu loaded", "id": saved.ID})
}

func (h *ArchiveHandler) DeleteMenu(c *gin.Context) {
	if err := h.archive.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "saved menu not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "saved menu deleted"})
}
