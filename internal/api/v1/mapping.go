package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/stablejson"
)

// FieldInfo is one canonical field, for the inspector's dropdown.
type FieldInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListFields returns the canonical field registry.
// GET /api/fields
func (h *Handler) ListFields(c *gin.Context) {
	defs := parser.Fields()
	fields := make([]FieldInfo, 0, len(defs))
	for _, f := range defs {
		fields = append(fields, FieldInfo{ID: f.ID, Label: f.Label})
	}
	c.JSON(http.StatusOK, gin.H{"fields": fields})
}

// MappingResponse is the mapping inspector payload: the automatic matches
// as recorded at import time and the effective mapping with overrides
// applied.
type MappingResponse struct {
	WorkbookID    string              `json:"workbookId"`
	SheetName     string              `json:"sheetName"`
	SheetKind     string              `json:"sheetKind"`
	Confidence    float64             `json:"confidence"`
	HeaderRow     int                 `json:"headerRow"`
	Columns       []string            `json:"columns"`
	Automatic     []model.ColumnMatch `json:"automatic"`
	Effective     []model.ColumnMatch `json:"effective"`
	OverrideCount int                 `json:"overrideCount"`
}

// GetSheetMapping returns the effective column mapping for one sheet.
// GET /api/workbooks/:id/sheets/:sheet/mapping
func (h *Handler) GetSheetMapping(c *gin.Context) {
	h.respondMapping(c, c.Param("id"), c.Param("sheet"))
}

type overrideRequest struct {
	Field string `json:"field" binding:"required"`
}

// SetMappingOverride pins a column to a canonical field and returns the
// refreshed effective mapping.
// PUT /api/workbooks/:id/sheets/:sheet/mapping/:column
func (h *Handler) SetMappingOverride(c *gin.Context) {
	workbookID, sheetName := c.Param("id"), c.Param("sheet")
	column, ok := pathColumn(c)
	if !ok {
		return
	}

	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field is required"})
		return
	}
	if !parser.FieldExists(req.Field) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown field: " + req.Field})
		return
	}

	h.overrides.Set(workbookID, sheetName, column, req.Field)
	h.log.Info("mapping override set",
		zap.String("workbook_id", workbookID),
		zap.String("sheet", sheetName),
		zap.Int("column", column),
		zap.String("field", req.Field),
	)
	h.respondMapping(c, workbookID, sheetName)
}

// ClearMappingOverride removes a column override. Clearing a column with no
// override succeeds and changes nothing.
// DELETE /api/workbooks/:id/sheets/:sheet/mapping/:column
func (h *Handler) ClearMappingOverride(c *gin.Context) {
	workbookID, sheetName := c.Param("id"), c.Param("sheet")
	column, ok := pathColumn(c)
	if !ok {
		return
	}
	h.overrides.Clear(workbookID, sheetName, column)
	h.respondMapping(c, workbookID, sheetName)
}

// ResetMappingOverrides drops every override.
// POST /api/mapping/reset
func (h *Handler) ResetMappingOverrides(c *gin.Context) {
	h.overrides.Reset()
	c.JSON(http.StatusOK, gin.H{"overrideCount": h.overrides.Count()})
}

func (h *Handler) respondMapping(c *gin.Context, workbookID, sheetName string) {
	meta, err := h.store.GetSheetMeta(workbookID, sheetName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	automatic := stablejson.SafeUnmarshal(meta.MappingJSON, []model.ColumnMatch(nil))
	columns := stablejson.SafeUnmarshal(meta.ColumnsJSON, []string(nil))
	effective := h.overrides.Apply(workbookID, sheetName, automatic)

	c.JSON(http.StatusOK, MappingResponse{
		WorkbookID:    workbookID,
		SheetName:     sheetName,
		SheetKind:     meta.SheetKind,
		Confidence:    meta.Confidence,
		HeaderRow:     meta.HeaderRow,
		Columns:       columns,
		Automatic:     automatic,
		Effective:     effective,
		OverrideCount: h.overrides.SheetCount(workbookID, sheetName),
	})
}

func pathColumn(c *gin.Context) (int, bool) {
	column, err := strconv.Atoi(c.Param("column"))
	if err != nil || column < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid column index"})
		return 0, false
	}
	return column, true
}
