// Package server assembles the application and owns the HTTP lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/menufacil/backend/config"
	"github.com/menufacil/backend/internal/api"
	"github.com/menufacil/backend/internal/export"
	"github.com/menufacil/backend/internal/planner"
	"github.com/menufacil/backend/internal/router"
	"github.com/menufacil/backend/internal/service"
	"github.com/menufacil/backend/internal/store"
)

// Server wires the store, the services and the HTTP router together.
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	router *gin.Engine
	http   *http.Server

	Catalog *service.CatalogService
	Menu    *service.MenuService
	Archive *service.ArchiveService
}

// New builds the full application over the given store. renderer may be
// nil when document rendering is not configured.
func New(cfg *config.Config, kv *store.KV, log *zap.Logger, renderer export.BlockRenderer) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	sugar := log.Sugar()

	catalog := service.NewCatalogService(kv, sugar)
	menu := service.NewMenuService(catalog, planner.New(nil), sugar)
	archive := service.NewArchiveService(kv, sugar)
	exporter := export.NewService(renderer, sugar)

	engine := router.Setup(
		log,
		api.NewCatalogHandler(catalog),
		api.NewMenuHandler(menu, exporter),
		api.NewArchiveHandler(archive, menu),
	)

	return &Server{
		cfg:     cfg,
		log:     log,
		router:  engine,
		Catalog: catalog,
		Menu:    menu,
		Archive: archive,
	}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Start blocks serving HTTP until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.router,
	}
	s.log.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
