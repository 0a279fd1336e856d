package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// StatusResponse is the landing-page system status.
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`
	ProjectCount   int    `json:"projectCount"`
	RobotCount     int    `json:"robotCount"`
	ToolingCount   int    `json:"toolingCount"`
	OverrideCount  int    `json:"overrideCount"`
	LastImportTime string `json:"lastImportTime"`
	BridgeEnabled  bool   `json:"bridgeEnabled"`
}

// GetStatus reports whether any data has been ingested yet.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	projects, err := h.store.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	robotCount, err := h.store.CountRobots(store.RobotQueryOptions{IncludeRetired: true})
	if err != nil {
		robotCount = 0
	}
	toolingCount, err := h.store.CountTooling(store.ToolingQueryOptions{IncludeRetired: true})
	if err != nil {
		toolingCount = 0
	}
	lastImport, err := h.store.LastImportTime()
	if err != nil {
		lastImport = ""
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    robotCount+toolingCount > 0,
		ProjectCount:   len(projects),
		RobotCount:     robotCount,
		ToolingCount:   toolingCount,
		OverrideCount:  h.overrides.Count(),
		LastImportTime: lastImport,
		BridgeEnabled:  h.bridge.Enabled(),
	})
}
