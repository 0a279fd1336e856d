package importer

import (
	"strconv"
	"strings"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
)

// fieldIndex maps canonical field ids to column indexes for one sheet's
// effective mapping.
type fieldIndex map[string]int

func indexByField(matches []model.ColumnMatch) fieldIndex {
	idx := make(fieldIndex, len(matches))
	for _, m := range matches {
		if m.Field == "" || m.Struck {
			continue
		}
		// First column wins when two columns map to the same field; the
		// user resolves the duplicate with an override.
		if _, exists := idx[m.Field]; !exists {
			idx[m.Field] = m.ColumnIndex
		}
	}
	return idx
}

func (idx fieldIndex) cell(row []string, field string) string {
	col, ok := idx[field]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func (idx fieldIndex) percent(row []string, field string) float64 {
	v, ok := parser.ParsePercent(idx.cell(row, field))
	if !ok {
		return 0
	}
	return v
}

func (idx fieldIndex) number(row []string, field string) float64 {
	raw := idx.cell(row, field)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Fields(raw)[0], 64)
	if err != nil {
		return 0
	}
	return v
}

type rowContext struct {
	projectID  int64
	workbookID string
	sheetName  string
	rowNo      int // zero-based sheet row
	retired    bool
}

// buildStation converts one CSG row; nil when the row carries no station
// number.
func buildStation(ctx rowContext, row []string, idx fieldIndex) *model.Station {
	stationNo := idx.cell(row, "station.no")
	if stationNo == "" {
		return nil
	}
	return &model.Station{
		ProjectID:   ctx.projectID,
		StationNo:   stationNo,
		Name:        idx.cell(row, "station.name"),
		Area:        idx.cell(row, "station.area"),
		CsgStatus:   idx.cell(row, "station.csgStatus"),
		PctComplete: idx.percent(row, "station.pctComplete"),
		SimEngineer: idx.cell(row, "station.simEngineer"),
		RowNo:       ctx.rowNo,
		SourceSheet: ctx.sheetName,
		WorkbookID:  ctx.workbookID,
	}
}

// buildRobot converts one robot-list row; nil when the row names no robot.
func buildRobot(ctx rowContext, row []string, idx fieldIndex) *model.Robot {
	name := idx.cell(row, "robot.id")
	if name == "" {
		name = idx.cell(row, "robot.name")
	}
	if name == "" {
		return nil
	}
	return &model.Robot{
		ProjectID:   ctx.projectID,
		StationNo:   idx.cell(row, "station.no"),
		Name:        name,
		Model:       idx.cell(row, "robot.model"),
		OEM:         idx.cell(row, "robot.oem"),
		Application: idx.cell(row, "robot.application"),
		SimStatus:   idx.cell(row, "robot.simStatus"),
		ReachStatus: idx.cell(row, "robot.reachStatus"),
		DressPack:   idx.cell(row, "robot.dressPack"),
		SimEngineer: idx.cell(row, "robot.simEngineer"),
		PctComplete: idx.percent(row, "robot.pctComplete"),
		Retired:     ctx.retired,
		RowNo:       ctx.rowNo,
		SourceSheet: ctx.sheetName,
		WorkbookID:  ctx.workbookID,
	}
}

// buildTooling converts one tooling-list row; nil when the row carries no
// tool id.
func buildTooling(ctx rowContext, row []string, idx fieldIndex) *model.Tooling {
	toolID := idx.cell(row, "tooling.id")
	if toolID == "" {
		return nil
	}
	return &model.Tooling{
		ProjectID:   ctx.projectID,
		StationNo:   idx.cell(row, "station.no"),
		ToolID:      toolID,
		ToolType:    idx.cell(row, "tooling.type"),
		GunForce:    idx.number(row, "tooling.gunForce"),
		Status:      idx.cell(row, "tooling.status"),
		PctComplete: idx.percent(row, "tooling.pctComplete"),
		Retired:     ctx.retired,
		RowNo:       ctx.rowNo,
		SourceSheet: ctx.sheetName,
		WorkbookID:  ctx.workbookID,
	}
}

// buildAssignment converts one roster row; nil when the row names no
// engineer.
func buildAssignment(ctx rowContext, row []string, idx fieldIndex) *model.Assignment {
	engineer := idx.cell(row, "assignment.engineer")
	if engineer == "" {
		return nil
	}
	return &model.Assignment{
		ProjectID:   ctx.projectID,
		Engineer:    engineer,
		StationNo:   idx.cell(row, "station.no"),
		Phase:       idx.cell(row, "assignment.phase"),
		RowNo:       ctx.rowNo,
		SourceSheet: ctx.sheetName,
		WorkbookID:  ctx.workbookID,
	}
}
