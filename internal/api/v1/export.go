package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const exportDownloadTTL = 10 * time.Minute

// Export renders the readiness report for a project and returns a download
// token.
// POST /api/export/:projectId
func (h *Handler) Export(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	project, err := h.store.GetProject(projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	f, err := h.exporter.Export(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("readiness_%s_%s.xlsx", project.Code, time.Now().Format("20060102_150405"))
	filePath := filepath.Join(h.exportsDir, filename)
	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write export"})
		return
	}

	token := h.downloads.issue(filePath, filename, exportDownloadTTL)
	h.log.Info("export ready",
		zap.String("project", project.Code),
		zap.String("file", filename),
	)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"expires":  time.Now().Add(exportDownloadTTL).UTC().Format(time.RFC3339),
	})
}

// DownloadExport serves a previously exported report. Tokens are one-shot.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	ticket, ok := h.downloads.claim(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}

	if _, err := os.Stat(ticket.path); err != nil {
		c.JSON(http.StatusGone, gin.H{"error": "export file no longer exists"})
		return
	}
	c.FileAttachment(ticket.path, ticket.filename)
}
