package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/service/readiness"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// ListProjects returns all known projects.
// GET /api/projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject returns one project.
// GET /api/projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := h.store.GetProject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetProjectSummary returns the readiness rollup for one project.
// GET /api/projects/:id/summary
func (h *Handler) GetProjectSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.projectSummary(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PushProjectReadiness forwards the rollup to the simulation bridge.
// POST /api/projects/:id/push
func (h *Handler) PushProjectReadiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !h.bridge.Enabled() {
		c.JSON(http.StatusConflict, gin.H{"error": "simulation bridge is not configured"})
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.projectSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.bridge.PushReadiness(c.Request.Context(), project.Code, summary); err != nil {
		h.log.Warn("bridge push failed", zap.String("project", project.Code), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pushed": true, "project": project.Code})
}

func (h *Handler) projectSummary(projectID int64) (readiness.ProjectSummary, error) {
	stations, err := h.store.ListStations(store.StationQueryOptions{ProjectID: &projectID})
	if err != nil {
		return readiness.ProjectSummary{}, err
	}
	robots, err := h.store.ListRobots(store.RobotQueryOptions{ProjectID: &projectID, IncludeRetired: true})
	if err != nil {
		return readiness.ProjectSummary{}, err
	}
	tooling, err := h.store.ListTooling(store.ToolingQueryOptions{ProjectID: &projectID, IncludeRetired: true})
	if err != nil {
		return readiness.ProjectSummary{}, err
	}
	return readiness.Summarize(projectID, stations, robots, tooling), nil
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
