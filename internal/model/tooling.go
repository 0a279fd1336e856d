package model

// Tooling is one tooling item (gun, gripper, fixture) from a tooling
// equipment list.
type Tooling struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"projectId"`
	StationNo   string  `json:"stationNo"`
	ToolID      string  `json:"toolId"`
	ToolType    string  `json:"toolType"` // gun / gripper / fixture / stand
	GunForce    float64 `json:"gunForce"` // kN, weld guns only
	Status      string  `json:"status"`
	PctComplete float64 `json:"pctComplete"`
	Retired     bool    `json:"retired"`
	RowNo       int     `json:"rowNo"`
	SourceSheet string  `json:"sourceSheet"`
	WorkbookID  string  `json:"workbookId"`
}
