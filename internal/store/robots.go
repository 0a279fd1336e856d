package store

import (
	"fmt"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// BatchInsertRobots writes a sheet's worth of robots in one transaction.
func (s *Store) BatchInsertRobots(records []*model.Robot) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO robots (
			project_id, station_no, name, model, oem, application,
			sim_status, reach_status, dress_pack, sim_engineer,
			pct_complete, retired, row_no, source_sheet, workbook_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ProjectID, r.StationNo, r.Name, r.Model, r.OEM, r.Application,
			r.SimStatus, r.ReachStatus, r.DressPack, r.SimEngineer,
			r.PctComplete, boolToInt(r.Retired), r.RowNo, r.SourceSheet, r.WorkbookID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert robot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RobotQueryOptions filters robot queries.
type RobotQueryOptions struct {
	ProjectID      *int64
	StationNo      *string
	SimEngineer    *string
	SimStatus      *string
	IncludeRetired bool
}

// ListRobots queries robots ordered by station then name.
func (s *Store) ListRobots(opts RobotQueryOptions) ([]*model.Robot, error) {
	query := `
		SELECT id, project_id, station_no, name, model, oem, application,
		       sim_status, reach_status, dress_pack, sim_engineer,
		       pct_complete, retired, row_no, source_sheet, workbook_id
		FROM robots WHERE 1=1`
	args := []any{}

	if opts.ProjectID != nil {
		query += " AND project_id = ?"
		args = append(args, *opts.ProjectID)
	}
	if opts.StationNo != nil {
		query += " AND station_no = ?"
		args = append(args, *opts.StationNo)
	}
	if opts.SimEngineer != nil {
		query += " AND sim_engineer = ?"
		args = append(args, *opts.SimEngineer)
	}
	if opts.SimStatus != nil {
		query += " AND sim_status = ?"
		args = append(args, *opts.SimStatus)
	}
	if !opts.IncludeRetired {
		query += " AND retired = 0"
	}
	query += " ORDER BY station_no, name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query robots: %w", err)
	}
	defer rows.Close()

	var robots []*model.Robot
	for rows.Next() {
		var r model.Robot
		var retired int
		err := rows.Scan(
			&r.ID, &r.ProjectID, &r.StationNo, &r.Name, &r.Model, &r.OEM, &r.Application,
			&r.SimStatus, &r.ReachStatus, &r.DressPack, &r.SimEngineer,
			&r.PctComplete, &retired, &r.RowNo, &r.SourceSheet, &r.WorkbookID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan robot: %w", err)
		}
		r.Retired = retired != 0
		robots = append(robots, &r)
	}
	return robots, rows.Err()
}

// CountRobots counts robots matching the options.
func (s *Store) CountRobots(opts RobotQueryOptions) (int, error) {
	robots, err := s.ListRobots(opts)
	if err != nil {
		return 0, err
	}
	return len(robots), nil
}

// DeleteRobotsByWorkbook removes robots that came from one workbook.
func (s *Store) DeleteRobotsByWorkbook(workbookID string) error {
	return s.Exec("DELETE FROM robots WHERE workbook_id = ?", workbookID)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
