// Package server assembles the HTTP service: storage, ingestion, mapping
// overrides and the dashboard API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/api/v1"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/config"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/exporter"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/importer"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/mapping"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/prefs"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/simbridge"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// Server is the assembled HTTP service.
type Server struct {
	router *gin.Engine
	store  *store.Store
	log    *zap.Logger
	http   *http.Server
}

// NewServer wires storage and all services from configuration.
func NewServer(cfg *config.AppConfig, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "simpilot.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	prefStore := prefs.New(sqliteStore.Preferences(), log)
	overrides := mapping.NewOverrideStore(prefStore,
		mapping.WithFieldValidator(parser.FieldExists))
	coordinator := importer.NewCoordinator(sqliteStore, overrides, log, importer.Options{
		HeaderScanRows: cfg.Ingest.HeaderScanRows,
		MinConfidence:  cfg.Ingest.MinConfidence,
	})
	bridge := simbridge.NewClient(cfg.SimBridge.BaseURL, nil, log)

	handler := v1.NewHandler(
		sqliteStore, overrides, prefStore, coordinator,
		exporter.NewExporter(sqliteStore), bridge, log,
		filepath.Join(dataDir, "exports"),
	)

	s := &Server{
		router: gin.New(),
		store:  sqliteStore,
		log:    log,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes(handler, devMode)
	return s, nil
}

func (s *Server) setupRoutes(handler *v1.Handler, devMode bool) {
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	handler.RegisterRoutes(s.router.Group("/api"))

	if devMode {
		// Front-end dev server owns everything outside /api.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	// A built front end next to the binary is served as-is; without one the
	// API still answers.
	distDir := "dist"
	if exeDir, err := config.GetExeDir(); err == nil {
		distDir = filepath.Join(exeDir, "dist")
	}
	if info, err := os.Stat(distDir); err == nil && info.IsDir() {
		s.router.Static("/assets", filepath.Join(distDir, "assets"))
		s.router.StaticFile("/", filepath.Join(distDir, "index.html"))
		s.router.NoRoute(func(c *gin.Context) {
			c.File(filepath.Join(distDir, "index.html"))
		})
		return
	}
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "simpilot", "api": "/api"})
	})
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.router}
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.log.Warn("http shutdown", zap.Error(err))
		}
	}
	return s.store.Close()
}

// Router exposes the mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
