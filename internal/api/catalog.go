package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menufacil/backend/internal/model"
	"github.com/menufacil/backend/internal/service"
)

// CatalogHandler serves the dish catalog and the utensil suggestion list.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	dishes := router.Group("/dishes")
	{
		dishes.GET("", h.ListDishes)
		dishes.GET("/facets", h.GetFacets)
		dishes.GET("/export", h.ExportDishes)
		dishes.POST("/import", h.ImportDishes)
		dishes.POST("/delete", h.DeleteManyDishes)
		dishes.DELETE("", h.DeleteAllDishes)
		dishes.GET("/:id", h.GetDish)
		dishes.POST("", h.CreateDish)
		dishes.PUT("/:id", h.UpdateDish)
		dishes.DELETE("/:id", h.DeleteDish)
	}
	utensils := router.Group("/utensils")
	{
		utensils.GET("", h.ListUtensils)
		utensils.POST("", h.AddUtensil)
	}
}

// ListDishes returns the catalog, optionally narrowed by a search query
// and at most one facet filter (country or difficulty).
func (h *CatalogHandler) ListDishes(c *gin.Context) {
	query := c.Query("q")
	var facet service.FacetSelection
	country := c.Query("country")
	difficulty := c.Query("difficulty")
	switch {
	case country != "" && difficulty != "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "at most one facet filter may be active"})
		return
	case country != "":
		facet = service.FacetSelection{Type: service.FacetCountry, Value: country}
	case difficulty != "":
		facet = service.FacetSelection{Type: service.FacetDifficulty, Value: difficulty}
	}

	dishes := h.catalog.Filter(query, facet)
	c.JSON(http.StatusOK, gin.H{"dishes": dishes, "total": len(dishes)})
}

// GetFacets returns the country and difficulty counts over the
// search-filtered catalog; they drive the toggleable facet buttons.
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Facets(c.Query("q")))
}

func (h *CatalogHandler) GetDish(c *gin.Context) {
	dish, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *CatalogHandler) CreateDish(c *gin.Context) {
	var dish model.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.catalog.Add(dish)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateDish(c *gin.Context) {
	var dish model.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dish.ID = c.Param("id")
	found, err := h.catalog.Update(dish)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *CatalogHandler) DeleteDish(c *gin.Context) {
	if err := h.catalog.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dish deleted"})
}

func (h *CatalogHandler) DeleteManyDishes(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	removed := h.catalog.RemoveMany(req.IDs)
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (h *CatalogHandler) DeleteAllDishes(c *gin.Context) {
	h.catalog.RemoveAll()
	c.JSON(http.StatusOK, gin.H{"message": "catalog cleared"})
}

// ImportDishes merges an uploaded JSON catalog. The whole file is
// rejected when it is not an array of well-shaped dishes; duplicates by
// id are skipped and counted.
func (h *CatalogHandler) ImportDishes(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}
	added, skipped, err := h.catalog.Import(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": added, "skipped": skipped})
}

func (h *CatalogHandler) ExportDishes(c *gin.Context) {
	data, err := h.catalog.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export catalog"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="recetas.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *CatalogHandler) ListUtensils(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"utensils": h.catalog.Utensils()})
}

func (h *CatalogHandler) AddUtensil(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.catalog.AddUtensil(req.Name)
	c.JSON(http.StatusOK, gin.H{"utensils": h.catalog.Utensils()})
}
