package model

// Assignment maps a simulation engineer to a station for a project phase,
// as listed in an assignment roster sheet.
type Assignment struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"projectId"`
	Engineer    string `json:"engineer"`
	StationNo   string `json:"stationNo"`
	Phase       string `json:"phase"` // e.g. "OLP", "Reach Study", "Final Sim"
	RowNo       int    `json:"rowNo"`
	SourceSheet string `json:"sourceSheet"`
	WorkbookID  string `json:"workbookId"`
}
