// Package v1 is the dashboard HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/exporter"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/importer"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/mapping"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/prefs"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/simbridge"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// Handler holds the API dependencies.
type Handler struct {
	store       *store.Store
	overrides   *mapping.OverrideStore
	prefs       *prefs.Store
	coordinator *importer.Coordinator
	exporter    *exporter.Exporter
	bridge      *simbridge.Client
	downloads   *ticketRegistry
	log         *zap.Logger
	exportsDir  string
}

// NewHandler wires the API handler.
func NewHandler(
	st *store.Store,
	overrides *mapping.OverrideStore,
	prefStore *prefs.Store,
	coordinator *importer.Coordinator,
	exp *exporter.Exporter,
	bridge *simbridge.Client,
	log *zap.Logger,
	exportsDir string,
) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store:       st,
		overrides:   overrides,
		prefs:       prefStore,
		coordinator: coordinator,
		exporter:    exp,
		bridge:      bridge,
		downloads:   newTicketRegistry(),
		log:         log,
		exportsDir:  exportsDir,
	}
}

// RegisterRoutes mounts the API under the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.GET("/projects", h.ListProjects)
	router.GET("/projects/:id", h.GetProject)
	router.GET("/projects/:id/summary", h.GetProjectSummary)
	router.POST("/projects/:id/push", h.PushProjectReadiness)

	router.GET("/stations", h.ListStations)
	router.GET("/robots", h.ListRobots)
	router.GET("/tooling", h.ListTooling)
	router.GET("/assignments", h.ListAssignments)

	router.POST("/import", h.Import)
	router.GET("/workbooks", h.ListWorkbooks)
	router.GET("/workbooks/:id/sheets", h.ListWorkbookSheets)

	router.GET("/fields", h.ListFields)
	router.GET("/workbooks/:id/sheets/:sheet/mapping", h.GetSheetMapping)
	router.PUT("/workbooks/:id/sheets/:sheet/mapping/:column", h.SetMappingOverride)
	router.DELETE("/workbooks/:id/sheets/:sheet/mapping/:column", h.ClearMappingOverride)
	router.POST("/mapping/reset", h.ResetMappingOverrides)

	router.GET("/prefs/:key", h.GetPreference)
	router.PUT("/prefs/:key", h.SetPreference)
	router.DELETE("/prefs/:key", h.DeletePreference)

	router.POST("/export/:projectId", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
