package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/prefs"
)

// UI preferences are opaque JSON values keyed by name. The backend never
// interprets them; it only persists and returns them.

// GetPreference reads one preference. Absent keys come back as null rather
// than 404 so the UI can treat "never saved" and "saved null" the same.
// GET /api/prefs/:key
func (h *Handler) GetPreference(c *gin.Context) {
	value := prefs.Read[any](h.prefs, c.Param("key"), nil)
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": value})
}

// SetPreference stores one preference.
// PUT /api/prefs/:key
func (h *Handler) SetPreference(c *gin.Context) {
	var body struct {
		Value any `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	h.prefs.Write(c.Param("key"), body.Value)
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key")})
}

// DeletePreference removes one preference.
// DELETE /api/prefs/:key
func (h *Handler) DeletePreference(c *gin.Context) {
	h.prefs.Remove(c.Param("key"))
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key")})
}
