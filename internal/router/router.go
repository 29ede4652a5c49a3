package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/menufacil/backend/internal/api"
	"github.com/menufacil/backend/internal/middleware"
)

// Setup configures the application routes.
func Setup(
	log *zap.Logger,
	catalogHandler *api.CatalogHandler,
	menuHandler *api.MenuHandler,
	archiveHandler *api.ArchiveHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	catalogHandler.RegisterRoutes(v1)
	menuHandler.RegisterRoutes(v1)
	archiveHandler.RegisterRoutes(v1)

	return router
}
