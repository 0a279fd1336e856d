// Package exporter renders a project's readiness rollup back to an Excel
// workbook so it can travel into customer status meetings without the
// dashboard.
package exporter

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/service/readiness"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// Exporter builds readiness report workbooks.
type Exporter struct {
	store *store.Store
}

func NewExporter(st *store.Store) *Exporter {
	return &Exporter{store: st}
}

// Export assembles the report for one project. The caller owns the returned
// file and must Close it.
func (e *Exporter) Export(projectID int64) (*excelize.File, error) {
	project, err := e.store.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	stations, err := e.store.ListStations(store.StationQueryOptions{ProjectID: &projectID})
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	robots, err := e.store.ListRobots(store.RobotQueryOptions{ProjectID: &projectID, IncludeRetired: true})
	if err != nil {
		return nil, fmt.Errorf("load robots: %w", err)
	}
	tooling, err := e.store.ListTooling(store.ToolingQueryOptions{ProjectID: &projectID, IncludeRetired: true})
	if err != nil {
		return nil, fmt.Errorf("load tooling: %w", err)
	}

	summary := readiness.Summarize(projectID, stations, robots, tooling)

	f := excelize.NewFile()
	if err := e.fillSummarySheet(f, project.Code, summary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillStationSheet(f, summary); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := e.fillRobotSheet(f, robots); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) fillSummarySheet(f *excelize.File, projectCode string, s readiness.ProjectSummary) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Project", projectCode},
		{"Stations", s.StationCount},
		{"Robots", s.RobotCount},
		{"Tooling", s.ToolingCount},
		{"Retired Robots", s.RetiredRobots},
		{"Retired Tooling", s.RetiredTooling},
		{"% Complete", fmt.Sprintf("%.1f", s.PctComplete)},
	}
	statuses := make([]string, 0, len(s.StatusCounts))
	for status := range s.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		rows = append(rows, []any{"Robots " + status, s.StatusCounts[status]})
	}
	return writeRows(f, sheet, 1, rows)
}

func (e *Exporter) fillStationSheet(f *excelize.File, s readiness.ProjectSummary) error {
	const sheet = "Stations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{"Station", "Area", "Robots", "Tooling", "% Complete", "Sim Engineer"}}
	for _, st := range s.Stations {
		rows = append(rows, []any{
			st.StationNo, st.Area, st.RobotCount, st.ToolingCount,
			fmt.Sprintf("%.1f", st.PctComplete), st.SimEngineer,
		})
	}
	if err := styleHeader(f, sheet, len(rows[0])); err != nil {
		return err
	}
	return writeRows(f, sheet, 1, rows)
}

func (e *Exporter) fillRobotSheet(f *excelize.File, robots []*model.Robot) error {
	const sheet = "Robots"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{{"Station", "Robot", "Model", "OEM", "Application", "Sim Status", "Reach", "% Complete", "Sim Engineer", "Retired"}}
	for _, r := range robots {
		retired := ""
		if r.Retired {
			retired = "yes"
		}
		rows = append(rows, []any{
			r.StationNo, r.Name, r.Model, r.OEM, r.Application,
			r.SimStatus, r.ReachStatus, fmt.Sprintf("%.1f", r.PctComplete),
			r.SimEngineer, retired,
		})
	}
	if err := styleHeader(f, sheet, len(rows[0])); err != nil {
		return err
	}
	return writeRows(f, sheet, 1, rows)
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, width int) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, styleID)
}
