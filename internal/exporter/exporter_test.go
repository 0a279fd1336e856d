package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

func TestExport(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "simpilot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	p, err := st.UpsertProject("J11-UB", "J11 Underbody", "", "")
	require.NoError(t, err)

	require.NoError(t, st.BatchUpsertStations([]*model.Station{
		{ProjectID: p.ID, StationNo: "010", Area: "Underbody", PctComplete: 55, WorkbookID: "wb1"},
	}))
	require.NoError(t, st.BatchInsertRobots([]*model.Robot{
		{ProjectID: p.ID, StationNo: "010", Name: "R01", SimStatus: "In Work", PctComplete: 40, WorkbookID: "wb1"},
		{ProjectID: p.ID, StationNo: "010", Name: "R02", SimStatus: "Complete", PctComplete: 100, Retired: true, WorkbookID: "wb1"},
	}))

	f, err := NewExporter(st).Export(p.ID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.ElementsMatch(t, []string{"Summary", "Stations", "Robots"}, f.GetSheetList())

	code, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "J11-UB", code)

	stationNo, err := f.GetCellValue("Stations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "010", stationNo)

	// Retired equipment still appears on the detail sheet.
	rows, err := f.GetRows("Robots")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExport_UnknownProject(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "simpilot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	_, err = NewExporter(st).Export(999)
	assert.Error(t, err)
}
