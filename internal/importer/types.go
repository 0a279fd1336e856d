package importer

import (
	"time"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
)

// SheetResult is the outcome of processing one sheet.
type SheetResult struct {
	SheetName    string           `json:"sheetName"`
	SheetKind    parser.SheetKind `json:"sheetKind"`
	Status       string           `json:"status"` // imported / skipped / error
	ImportedRows int              `json:"importedRows"`
	SkippedRows  int              `json:"skippedRows"`
	ErrorRows    int              `json:"errorRows"`
	Errors       []string         `json:"errors,omitempty"`
	Duration     time.Duration    `json:"duration"`
}

// ImportReport summarizes one workbook ingestion.
type ImportReport struct {
	WorkbookID     string        `json:"workbookId"`
	Filename       string        `json:"filename"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	TotalRows      int           `json:"totalRows"`
	ImportedRows   int           `json:"importedRows"`
	ErrorRows      int           `json:"errorRows"`
	Duration       time.Duration `json:"duration"`
	Sheets         []SheetResult `json:"sheets"`
}

// ProgressEvent is one entry in the SSE progress stream.
type ProgressEvent struct {
	Type      string    `json:"type"` // start / info / warning / sheet_start / sheet_done / done / error
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
