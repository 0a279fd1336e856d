package importer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/mapping"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/prefs"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// writeWorkbook builds a three-sheet equipment workbook the way line
// engineers actually format them: a robot list with one struck-through row,
// a CSG station list and a summary sheet that must be skipped.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Robot List"))
	robotRows := [][]any{
		{"Station", "Robot", "Model", "OEM", "Application", "Sim Status", "Reach", "% Complete", "Sim Engineer"},
		{"010", "R01", "R-2000iC", "Fanuc", "Spot", "In Work", "OK", "40%", "J. Mokoena"},
		{"010", "R02", "R-2000iC", "Fanuc", "Spot", "Complete", "OK", "100%", "J. Mokoena"},
		{"020", "R03", "IRB 6700", "ABB", "Handling", "In Work", "TBD", "10%", "A. Naidoo"},
	}
	for i, row := range robotRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Robot List", cell, &row))
	}
	// Row 4 (R03) is retired: whole row struck through.
	strike, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Strike: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Robot List", "A4", "I4", strike))

	_, err = f.NewSheet("CSG Status")
	require.NoError(t, err)
	csgRows := [][]any{
		{"Station", "Station Name", "Area", "CSG Status", "% Complete", "Sim Engineer"},
		{"010", "Front Floor", "Underbody", "Signed Off", "55%", "J. Mokoena"},
		{"020", "Rear Floor", "Underbody", "Open", "20%", "A. Naidoo"},
	}
	for i, row := range csgRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("CSG Status", cell, &row))
	}

	_, err = f.NewSheet("Readiness Summary")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Readiness Summary", "A1", "Totals"))

	path := filepath.Join(t.TempDir(), "equipment.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestCoordinator(t *testing.T) (*Coordinator, *store.Store, *mapping.OverrideStore) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "simpilot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	p := prefs.New(prefs.NewMemoryStorage(), nil)
	overrides := mapping.NewOverrideStore(p, mapping.WithFieldValidator(parser.FieldExists))
	return NewCoordinator(st, overrides, nil, Options{}), st, overrides
}

func TestImport_FullWorkbook(t *testing.T) {
	coord, st, _ := newTestCoordinator(t)
	path := writeWorkbook(t)

	report, err := coord.Run(context.Background(), Request{FilePath: path, ProjectCode: "J11"})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 3, report.TotalSheets)
	assert.Equal(t, 2, report.ImportedSheets)
	assert.Equal(t, 1, report.SkippedSheets)
	assert.NotEmpty(t, report.WorkbookID)

	project, err := st.GetProjectByCode("J11")
	require.NoError(t, err)

	robots, err := st.ListRobots(store.RobotQueryOptions{ProjectID: &project.ID, IncludeRetired: true})
	require.NoError(t, err)
	require.Len(t, robots, 3)

	byName := map[string]bool{}
	for _, r := range robots {
		byName[r.Name] = r.Retired
	}
	assert.False(t, byName["R01"])
	assert.True(t, byName["R03"], "struck-through row should import as retired")

	active, err := st.ListRobots(store.RobotQueryOptions{ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	stations, err := st.ListStations(store.StationQueryOptions{ProjectID: &project.ID})
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "Underbody", stations[0].Area)
	assert.Equal(t, 55.0, stations[0].PctComplete)

	metas, err := st.ListSheetMeta(report.WorkbookID)
	require.NoError(t, err)
	assert.Len(t, metas, 3)
	for _, m := range metas {
		if m.SheetName == "Readiness Summary" {
			assert.Equal(t, "skipped", m.Status)
		} else {
			assert.Equal(t, "imported", m.Status)
		}
	}
}

func TestImport_PreStagedOverrideWins(t *testing.T) {
	coord, st, overrides := newTestCoordinator(t)
	path := writeWorkbook(t)

	// Corrections may be staged before the run when the workbook id is
	// known up front. Column 6 ("Reach") is repointed at the dress pack
	// field.
	overrides.Set("wb-fixed", "Robot List", 6, "robot.dressPack")

	_, err := coord.Run(context.Background(), Request{
		FilePath:    path,
		ProjectCode: "J11",
		WorkbookID:  "wb-fixed",
	})
	require.NoError(t, err)

	project, err := st.GetProjectByCode("J11")
	require.NoError(t, err)
	robots, err := st.ListRobots(store.RobotQueryOptions{ProjectID: &project.ID})
	require.NoError(t, err)
	require.NotEmpty(t, robots)

	for _, r := range robots {
		assert.Empty(t, r.ReachStatus)
		assert.NotEmpty(t, r.DressPack)
	}
}

func TestImport_ReimportReplaces(t *testing.T) {
	coord, st, _ := newTestCoordinator(t)
	path := writeWorkbook(t)

	req := Request{FilePath: path, ProjectCode: "J11", WorkbookID: "wb-1"}
	_, err := coord.Run(context.Background(), req)
	require.NoError(t, err)
	_, err = coord.Run(context.Background(), req)
	require.NoError(t, err)

	project, err := st.GetProjectByCode("J11")
	require.NoError(t, err)
	n, err := st.CountRobots(store.RobotQueryOptions{ProjectID: &project.ID, IncludeRetired: true})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestImport_MissingFileReportsError(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)

	_, err := coord.Run(context.Background(), Request{FilePath: "/nope/missing.xlsx"})
	assert.Error(t, err)
}

func TestImport_TerminalEventReachesSlowConsumer(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)
	path := writeWorkbook(t)

	// A one-slot channel and a stalled reader: intermediate events may be
	// dropped, the terminal done event may not.
	events := make(chan ProgressEvent, 1)
	go func() {
		coord.doImport(context.Background(), Request{FilePath: path, ProjectCode: "J11"}, events)
		close(events)
	}()

	time.Sleep(200 * time.Millisecond)

	sawDone := false
	for evt := range events {
		if evt.Type == "done" {
			sawDone = true
		}
	}
	assert.True(t, sawDone, "done event lost on a stalled consumer")
}

func TestImport_TerminalErrorReachesSlowConsumer(t *testing.T) {
	coord, _, _ := newTestCoordinator(t)

	events := make(chan ProgressEvent, 1)
	go func() {
		coord.doImport(context.Background(), Request{FilePath: "/nope/missing.xlsx"}, events)
		close(events)
	}()

	time.Sleep(100 * time.Millisecond)

	sawError := false
	for evt := range events {
		if evt.Type == "error" {
			sawError = true
		}
	}
	assert.True(t, sawError, "error event lost on a stalled consumer")
}

func TestImport_HeaderScanRowsOption(t *testing.T) {
	// Customer workbooks sometimes carry a tall title banner, pushing the
	// header below the default ten-row scan.
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Robot List"))
	for i := 1; i <= 14; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Robot List", cell, "J11-UB Underbody Program"))
	}
	rows := [][]any{
		{"Station", "Robot", "Model", "OEM", "Application", "Sim Status", "Reach"},
		{"010", "R01", "R-2000iC", "Fanuc", "Spot", "In Work", "OK"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, 15+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Robot List", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "banner.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	st, err := store.New(filepath.Join(t.TempDir(), "simpilot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	p := prefs.New(prefs.NewMemoryStorage(), nil)
	overrides := mapping.NewOverrideStore(p, mapping.WithFieldValidator(parser.FieldExists))

	shallow := NewCoordinator(st, overrides, nil, Options{})
	report, err := shallow.Run(context.Background(), Request{FilePath: path, ProjectCode: "J11", WorkbookID: "wb-shallow"})
	require.NoError(t, err)
	assert.Equal(t, 0, report.ImportedSheets)
	assert.Equal(t, 1, report.SkippedSheets)

	deep := NewCoordinator(st, overrides, nil, Options{HeaderScanRows: 25})
	report, err = deep.Run(context.Background(), Request{FilePath: path, ProjectCode: "J11", WorkbookID: "wb-deep"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.ImportedSheets)
	assert.Equal(t, 1, report.ImportedRows)
}

func TestIndexByField(t *testing.T) {
	matcher := parser.NewMatcher(0)
	matches := matcher.MatchColumns(parser.SheetKindRobots,
		[]string{"Station", "Robot", "Sim Status"}, nil)
	idx := indexByField(matches)

	assert.Equal(t, 0, idx["station.no"])
	assert.Equal(t, 1, idx["robot.id"])
	assert.Equal(t, 2, idx["robot.simStatus"])

	row := []string{"010", "R01", "In Work"}
	assert.Equal(t, "R01", idx.cell(row, "robot.id"))
	assert.Equal(t, "", idx.cell(row, "robot.model"))
}
