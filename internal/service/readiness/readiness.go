// Package readiness computes simulation-readiness rollups from equipment
// records. Pure aggregation: inputs in, summary out, no storage access.
package readiness

import (
	"sort"
	"strings"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// StationSummary is the per-station rollup shown on the dashboard.
type StationSummary struct {
	StationNo    string  `json:"stationNo"`
	Area         string  `json:"area"`
	RobotCount   int     `json:"robotCount"`
	ToolingCount int     `json:"toolingCount"`
	PctComplete  float64 `json:"pctComplete"` // mean over active equipment
	SimEngineer  string  `json:"simEngineer"`
}

// EngineerLoad is the per-engineer workload rollup.
type EngineerLoad struct {
	Engineer    string  `json:"engineer"`
	RobotCount  int     `json:"robotCount"`
	PctComplete float64 `json:"pctComplete"`
}

// ProjectSummary is the whole-project readiness view.
type ProjectSummary struct {
	ProjectID      int64            `json:"projectId"`
	StationCount   int              `json:"stationCount"`
	RobotCount     int              `json:"robotCount"`
	ToolingCount   int              `json:"toolingCount"`
	PctComplete    float64          `json:"pctComplete"`
	StatusCounts   map[string]int   `json:"statusCounts"` // robots by sim status
	Stations       []StationSummary `json:"stations"`
	EngineerLoads  []EngineerLoad   `json:"engineerLoads"`
	RetiredRobots  int              `json:"retiredRobots"`
	RetiredTooling int              `json:"retiredTooling"`
}

// Summarize builds the project rollup. Retired equipment is counted
// separately and excluded from completion math.
func Summarize(projectID int64, stations []*model.Station, robots []*model.Robot, tooling []*model.Tooling) ProjectSummary {
	summary := ProjectSummary{
		ProjectID:    projectID,
		StatusCounts: make(map[string]int),
	}

	type acc struct {
		area       string
		engineer   string
		robots     int
		tooling    int
		pctSum     float64
		pctEntries int
	}
	byStation := make(map[string]*acc)
	stationOrder := make([]string, 0)

	touch := func(stationNo string) *acc {
		a, ok := byStation[stationNo]
		if !ok {
			a = &acc{}
			byStation[stationNo] = a
			stationOrder = append(stationOrder, stationNo)
		}
		return a
	}

	for _, st := range stations {
		a := touch(st.StationNo)
		a.area = st.Area
		a.engineer = st.SimEngineer
	}

	engineers := make(map[string]*EngineerLoad)

	totalPct := 0.0
	totalEntries := 0

	for _, r := range robots {
		if r.Retired {
			summary.RetiredRobots++
			continue
		}
		summary.RobotCount++
		status := r.SimStatus
		if strings.TrimSpace(status) == "" {
			status = "Unknown"
		}
		summary.StatusCounts[status]++

		a := touch(r.StationNo)
		a.robots++
		a.pctSum += r.PctComplete
		a.pctEntries++
		totalPct += r.PctComplete
		totalEntries++

		if eng := strings.TrimSpace(r.SimEngineer); eng != "" {
			load, ok := engineers[eng]
			if !ok {
				load = &EngineerLoad{Engineer: eng}
				engineers[eng] = load
			}
			load.RobotCount++
			load.PctComplete += r.PctComplete
		}
	}

	for _, tl := range tooling {
		if tl.Retired {
			summary.RetiredTooling++
			continue
		}
		summary.ToolingCount++
		a := touch(tl.StationNo)
		a.tooling++
		a.pctSum += tl.PctComplete
		a.pctEntries++
		totalPct += tl.PctComplete
		totalEntries++
	}

	sort.Strings(stationOrder)
	for _, stationNo := range stationOrder {
		a := byStation[stationNo]
		pct := 0.0
		if a.pctEntries > 0 {
			pct = a.pctSum / float64(a.pctEntries)
		}
		summary.Stations = append(summary.Stations, StationSummary{
			StationNo:    stationNo,
			Area:         a.area,
			RobotCount:   a.robots,
			ToolingCount: a.tooling,
			PctComplete:  pct,
			SimEngineer:  a.engineer,
		})
	}
	summary.StationCount = len(summary.Stations)

	if totalEntries > 0 {
		summary.PctComplete = totalPct / float64(totalEntries)
	}

	for _, load := range engineers {
		if load.RobotCount > 0 {
			load.PctComplete /= float64(load.RobotCount)
		}
		summary.EngineerLoads = append(summary.EngineerLoads, *load)
	}
	sort.Slice(summary.EngineerLoads, func(i, j int) bool {
		return summary.EngineerLoads[i].Engineer < summary.EngineerLoads[j].Engineer
	})

	return summary
}
