package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// ListStations returns stations, optionally filtered.
// GET /api/stations?projectId=&area=
func (h *Handler) ListStations(c *gin.Context) {
	opts := store.StationQueryOptions{
		ProjectID: queryID(c, "projectId"),
		Area:      queryString(c, "area"),
	}
	stations, err := h.store.ListStations(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": stations, "total": len(stations)})
}

// ListRobots returns robots, optionally filtered. Retired robots are hidden
// unless includeRetired=true.
// GET /api/robots?projectId=&stationNo=&simStatus=&simEngineer=&includeRetired=
func (h *Handler) ListRobots(c *gin.Context) {
	opts := store.RobotQueryOptions{
		ProjectID:      queryID(c, "projectId"),
		StationNo:      queryString(c, "stationNo"),
		SimStatus:      queryString(c, "simStatus"),
		SimEngineer:    queryString(c, "simEngineer"),
		IncludeRetired: c.Query("includeRetired") == "true",
	}
	robots, err := h.store.ListRobots(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"robots": robots, "total": len(robots)})
}

// ListTooling returns tooling, optionally filtered.
// GET /api/tooling?projectId=&stationNo=&toolType=&includeRetired=
func (h *Handler) ListTooling(c *gin.Context) {
	opts := store.ToolingQueryOptions{
		ProjectID:      queryID(c, "projectId"),
		StationNo:      queryString(c, "stationNo"),
		ToolType:       queryString(c, "toolType"),
		IncludeRetired: c.Query("includeRetired") == "true",
	}
	tooling, err := h.store.ListTooling(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tooling": tooling, "total": len(tooling)})
}

// ListAssignments returns the engineer roster for a project.
// GET /api/assignments?projectId=
func (h *Handler) ListAssignments(c *gin.Context) {
	projectID := queryID(c, "projectId")
	if projectID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId is required"})
		return
	}
	assignments, err := h.store.ListAssignments(*projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments, "total": len(assignments)})
}

func queryID(c *gin.Context, name string) *int64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func queryString(c *gin.Context, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}
