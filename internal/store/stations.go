package store

import (
	"fmt"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// BatchUpsertStations writes a sheet's worth of stations in one
// transaction. Re-importing the same station number replaces the row.
func (s *Store) BatchUpsertStations(records []*model.Station) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO stations (
			project_id, station_no, name, area, csg_status,
			pct_complete, sim_engineer, row_no, source_sheet, workbook_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id, station_no) DO UPDATE SET
			name = excluded.name,
			area = excluded.area,
			csg_status = excluded.csg_status,
			pct_complete = excluded.pct_complete,
			sim_engineer = excluded.sim_engineer,
			row_no = excluded.row_no,
			source_sheet = excluded.source_sheet,
			workbook_id = excluded.workbook_id
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ProjectID, r.StationNo, r.Name, r.Area, r.CsgStatus,
			r.PctComplete, r.SimEngineer, r.RowNo, r.SourceSheet, r.WorkbookID,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert station %s: %w", r.StationNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// StationQueryOptions filters station queries.
type StationQueryOptions struct {
	ProjectID *int64
	Area      *string
	Engineer  *string
}

// ListStations queries stations ordered by station number.
func (s *Store) ListStations(opts StationQueryOptions) ([]*model.Station, error) {
	query := `
		SELECT id, project_id, station_no, name, area, csg_status,
		       pct_complete, sim_engineer, row_no, source_sheet, workbook_id
		FROM stations WHERE 1=1`
	args := []any{}

	if opts.ProjectID != nil {
		query += " AND project_id = ?"
		args = append(args, *opts.ProjectID)
	}
	if opts.Area != nil {
		query += " AND area = ?"
		args = append(args, *opts.Area)
	}
	if opts.Engineer != nil {
		query += " AND sim_engineer = ?"
		args = append(args, *opts.Engineer)
	}
	query += " ORDER BY station_no"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []*model.Station
	for rows.Next() {
		var st model.Station
		err := rows.Scan(
			&st.ID, &st.ProjectID, &st.StationNo, &st.Name, &st.Area, &st.CsgStatus,
			&st.PctComplete, &st.SimEngineer, &st.RowNo, &st.SourceSheet, &st.WorkbookID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, &st)
	}
	return stations, rows.Err()
}

// DeleteStationsByWorkbook removes stations that came from one workbook,
// used before re-ingesting the same file.
func (s *Store) DeleteStationsByWorkbook(workbookID string) error {
	return s.Exec("DELETE FROM stations WHERE workbook_id = ?", workbookID)
}
