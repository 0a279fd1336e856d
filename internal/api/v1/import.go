package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/importer"
)

// Import ingests an uploaded workbook, streaming progress as SSE.
// POST /api/import (multipart: file, projectCode, workbookId)
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	uploaded := files[0]

	tempPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("simpilot_import_%d_%s", time.Now().Unix(), filepath.Base(uploaded.Filename)))
	if err := c.SaveUploadedFile(uploaded, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tempPath)

	req := importer.Request{
		FilePath:    tempPath,
		Filename:    uploaded.Filename,
		FileSize:    uploaded.Size,
		ProjectCode: c.PostForm("projectCode"),
		WorkbookID:  c.PostForm("workbookId"),
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	for event := range h.coordinator.Import(c.Request.Context(), req) {
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", data)
		flusher.Flush()
	}
}

// ListWorkbooks returns ingested workbooks, newest first.
// GET /api/workbooks
func (h *Handler) ListWorkbooks(c *gin.Context) {
	workbooks, err := h.store.ListWorkbooks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workbooks": workbooks, "total": len(workbooks)})
}

// ListWorkbookSheets returns the per-sheet recognition record of a
// workbook.
// GET /api/workbooks/:id/sheets
func (h *Handler) ListWorkbookSheets(c *gin.Context) {
	workbookID := c.Param("id")
	if _, err := h.store.GetWorkbook(workbookID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	metas, err := h.store.ListSheetMeta(workbookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sheets": metas, "total": len(metas)})
}
