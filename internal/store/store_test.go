package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "simpilot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProjects_UpsertAndList(t *testing.T) {
	s := newTestStore(t)

	p, err := s.UpsertProject("J11-UB", "J11 Underbody", "OEM-A", "Plant 2")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	// Re-upserting by code keeps the row and fills only non-empty fields.
	p2, err := s.UpsertProject("J11-UB", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, p.ID, p2.ID)
	assert.Equal(t, "J11 Underbody", p2.Name)

	projects, err := s.ListProjects()
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestRobots_BatchInsertAndQuery(t *testing.T) {
	s := newTestStore(t)

	p, err := s.UpsertProject("J11-UB", "", "", "")
	require.NoError(t, err)

	records := []*model.Robot{
		{ProjectID: p.ID, StationNo: "010", Name: "R01", OEM: "Fanuc", SimStatus: "In Work", PctComplete: 40, WorkbookID: "wb1"},
		{ProjectID: p.ID, StationNo: "010", Name: "R02", OEM: "Fanuc", SimStatus: "Complete", PctComplete: 100, WorkbookID: "wb1"},
		{ProjectID: p.ID, StationNo: "020", Name: "R01", OEM: "ABB", SimStatus: "In Work", Retired: true, WorkbookID: "wb1"},
	}
	require.NoError(t, s.BatchInsertRobots(records))

	// Retired robots are excluded by default.
	robots, err := s.ListRobots(RobotQueryOptions{ProjectID: &p.ID})
	require.NoError(t, err)
	assert.Len(t, robots, 2)

	all, err := s.ListRobots(RobotQueryOptions{ProjectID: &p.ID, IncludeRetired: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	status := "Complete"
	done, err := s.ListRobots(RobotQueryOptions{ProjectID: &p.ID, SimStatus: &status})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "R02", done[0].Name)

	require.NoError(t, s.DeleteRobotsByWorkbook("wb1"))
	n, err := s.CountRobots(RobotQueryOptions{ProjectID: &p.ID, IncludeRetired: true})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStations_UpsertReplacesOnReimport(t *testing.T) {
	s := newTestStore(t)

	p, err := s.UpsertProject("J11-UB", "", "", "")
	require.NoError(t, err)

	first := []*model.Station{{ProjectID: p.ID, StationNo: "010", Area: "Underbody", PctComplete: 20}}
	require.NoError(t, s.BatchUpsertStations(first))

	second := []*model.Station{{ProjectID: p.ID, StationNo: "010", Area: "Underbody", PctComplete: 55}}
	require.NoError(t, s.BatchUpsertStations(second))

	stations, err := s.ListStations(StationQueryOptions{ProjectID: &p.ID})
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, 55.0, stations[0].PctComplete)
}

func TestSheetMeta_UpsertAndFetch(t *testing.T) {
	s := newTestStore(t)

	meta := model.SheetMeta{
		WorkbookID:  "wb1",
		SheetName:   "Robots",
		SheetKind:   "robots",
		Confidence:  0.92,
		HeaderRow:   1,
		ColumnsJSON: BuildColumnsJSON([]string{"Station", "Robot"}),
		MappingJSON: "[]",
		Status:      "imported",
	}
	require.NoError(t, s.InsertSheetMeta(meta))

	meta.ImportedRows = 12
	require.NoError(t, s.InsertSheetMeta(meta))

	got, err := s.GetSheetMeta("wb1", "Robots")
	require.NoError(t, err)
	assert.Equal(t, 12, got.ImportedRows)
	assert.Equal(t, 1, got.HeaderRow)

	metas, err := s.ListSheetMeta("wb1")
	require.NoError(t, err)
	assert.Len(t, metas, 1)

	_, err = s.GetSheetMeta("wb1", "Nope")
	assert.Error(t, err)
}

func TestPreferenceStorage(t *testing.T) {
	s := newTestStore(t)
	p := s.Preferences()

	_, ok, err := p.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetItem("k", "v1"))
	require.NoError(t, p.SetItem("k", "v2"))

	v, ok, err := p.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, p.RemoveItem("k"))
	require.NoError(t, p.RemoveItem("k"))
}

func TestWorkbooksAndImportLog(t *testing.T) {
	s := newTestStore(t)

	wb := model.Workbook{ID: "wb1", Filename: "equipment.xlsx", FileSize: 1024, SheetCount: 3}
	require.NoError(t, s.InsertWorkbook(wb))

	got, err := s.GetWorkbook("wb1")
	require.NoError(t, err)
	assert.Equal(t, "equipment.xlsx", got.Filename)

	list, err := s.ListWorkbooks()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	id, err := s.CreateImportLog("wb1", "equipment.xlsx", "/tmp/equipment.xlsx", 1024)
	require.NoError(t, err)
	require.NoError(t, s.CompleteImportLog(id, 3, 2, 1, 40, 38, 2, "done", ""))

	last, err := s.LastImportTime()
	require.NoError(t, err)
	assert.NotEmpty(t, last)
}
