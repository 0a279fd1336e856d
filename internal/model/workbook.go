package model

import "time"

// Workbook is one ingested spreadsheet file. The ID is assigned at upload
// and stays stable for the lifetime of the ingestion session.
type Workbook struct {
	ID         string    `json:"id"` // uuid
	ProjectID  int64     `json:"projectId"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"fileSize"`
	SheetCount int       `json:"sheetCount"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SheetMeta records how one sheet of a workbook was recognized and mapped.
// Kept for the mapping inspector and for import troubleshooting.
type SheetMeta struct {
	ID           int64   `json:"id"`
	WorkbookID   string  `json:"workbookId"`
	SheetName    string  `json:"sheetName"`
	SheetKind    string  `json:"sheetKind"`
	Confidence   float64 `json:"confidence"`
	HeaderRow    int     `json:"headerRow"` // zero-based row index of the detected header
	TotalRows    int     `json:"totalRows"`
	TotalColumns int     `json:"totalColumns"`
	ImportedRows int     `json:"importedRows"`
	ColumnsJSON  string  `json:"columnsJson"` // raw header labels
	MappingJSON  string  `json:"mappingJson"` // automatic matches, before overrides
	Status       string  `json:"status"`      // imported / skipped / error
	ErrorMessage string  `json:"errorMessage"`
	SourceFile   string  `json:"sourceFile"`
}
