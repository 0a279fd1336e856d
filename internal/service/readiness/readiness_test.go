package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	stations := []*model.Station{
		{StationNo: "010", Area: "Underbody", SimEngineer: "J. Mokoena"},
		{StationNo: "020", Area: "Underbody"},
	}
	robots := []*model.Robot{
		{StationNo: "010", SimStatus: "In Work", PctComplete: 50, SimEngineer: "J. Mokoena"},
		{StationNo: "010", SimStatus: "Complete", PctComplete: 100, SimEngineer: "J. Mokoena"},
		{StationNo: "020", SimStatus: "", PctComplete: 0, SimEngineer: "A. Naidoo"},
		{StationNo: "020", SimStatus: "In Work", PctComplete: 30, Retired: true},
	}
	tooling := []*model.Tooling{
		{StationNo: "010", ToolType: "gun", PctComplete: 70},
		{StationNo: "020", ToolType: "gripper", Retired: true},
	}

	got := Summarize(7, stations, robots, tooling)

	assert.Equal(t, int64(7), got.ProjectID)
	assert.Equal(t, 2, got.StationCount)
	assert.Equal(t, 3, got.RobotCount)
	assert.Equal(t, 1, got.ToolingCount)
	assert.Equal(t, 1, got.RetiredRobots)
	assert.Equal(t, 1, got.RetiredTooling)

	// (50 + 100 + 0 + 70) / 4 active entries
	assert.InDelta(t, 55.0, got.PctComplete, 1e-9)

	assert.Equal(t, map[string]int{"In Work": 1, "Complete": 1, "Unknown": 1}, got.StatusCounts)

	require.Len(t, got.Stations, 2)
	st010 := got.Stations[0]
	assert.Equal(t, "010", st010.StationNo)
	assert.Equal(t, "Underbody", st010.Area)
	assert.Equal(t, 2, st010.RobotCount)
	assert.Equal(t, 1, st010.ToolingCount)
	assert.InDelta(t, (50.0+100.0+70.0)/3.0, st010.PctComplete, 1e-9)
	assert.Equal(t, "J. Mokoena", st010.SimEngineer)

	require.Len(t, got.EngineerLoads, 2)
	assert.Equal(t, "A. Naidoo", got.EngineerLoads[0].Engineer)
	assert.Equal(t, "J. Mokoena", got.EngineerLoads[1].Engineer)
	assert.Equal(t, 2, got.EngineerLoads[1].RobotCount)
	assert.InDelta(t, 75.0, got.EngineerLoads[1].PctComplete, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	got := Summarize(1, nil, nil, nil)
	assert.Zero(t, got.StationCount)
	assert.Zero(t, got.PctComplete)
	assert.Empty(t, got.Stations)
}

func TestSummarize_RobotOnlyStationAppears(t *testing.T) {
	t.Parallel()

	// Equipment referencing a station missing from the CSG list still rolls
	// up under that station number.
	robots := []*model.Robot{{StationNo: "030", SimStatus: "In Work", PctComplete: 10}}
	got := Summarize(1, nil, robots, nil)
	require.Len(t, got.Stations, 1)
	assert.Equal(t, "030", got.Stations[0].StationNo)
}
