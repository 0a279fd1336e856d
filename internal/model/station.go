package model

// Station is one line station within a project, as listed in the CSG
// export. StationNo is the key the equipment sheets reference.
type Station struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"projectId"`
	StationNo   string  `json:"stationNo"` // e.g. "010", "UB-020"
	Name        string  `json:"name"`
	Area        string  `json:"area"` // line area / zone, e.g. "Underbody"
	CsgStatus   string  `json:"csgStatus"`
	PctComplete float64 `json:"pctComplete"`
	SimEngineer string  `json:"simEngineer"`
	RowNo       int     `json:"rowNo"`
	SourceSheet string  `json:"sourceSheet"`
	WorkbookID  string  `json:"workbookId"`
}
