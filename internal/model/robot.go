package model

// Robot is one robot position from a robot equipment list.
type Robot struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"projectId"`
	StationNo   string  `json:"stationNo"`
	Name        string  `json:"name"` // position name, e.g. "R01"
	Model       string  `json:"model"`
	OEM         string  `json:"oem"`
	Application string  `json:"application"` // spot / sealer / handling / stud
	SimStatus   string  `json:"simStatus"`
	ReachStatus string  `json:"reachStatus"`
	DressPack   string  `json:"dressPack"`
	SimEngineer string  `json:"simEngineer"`
	PctComplete float64 `json:"pctComplete"`
	Retired     bool    `json:"retired"` // row struck through in the source sheet
	RowNo       int     `json:"rowNo"`
	SourceSheet string  `json:"sourceSheet"`
	WorkbookID  string  `json:"workbookId"`
}
