package store

import (
	"fmt"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// BatchInsertTooling writes a sheet's worth of tooling in one transaction.
func (s *Store) BatchInsertTooling(records []*model.Tooling) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO tooling (
			project_id, station_no, tool_id, tool_type, gun_force,
			status, pct_complete, retired, row_no, source_sheet, workbook_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ProjectID, r.StationNo, r.ToolID, r.ToolType, r.GunForce,
			r.Status, r.PctComplete, boolToInt(r.Retired), r.RowNo, r.SourceSheet, r.WorkbookID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tooling: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ToolingQueryOptions filters tooling queries.
type ToolingQueryOptions struct {
	ProjectID      *int64
	StationNo      *string
	ToolType       *string
	IncludeRetired bool
}

// ListTooling queries tooling ordered by station then tool id.
func (s *Store) ListTooling(opts ToolingQueryOptions) ([]*model.Tooling, error) {
	query := `
		SELECT id, project_id, station_no, tool_id, tool_type, gun_force,
		       status, pct_complete, retired, row_no, source_sheet, workbook_id
		FROM tooling WHERE 1=1`
	args := []any{}

	if opts.ProjectID != nil {
		query += " AND project_id = ?"
		args = append(args, *opts.ProjectID)
	}
	if opts.StationNo != nil {
		query += " AND station_no = ?"
		args = append(args, *opts.StationNo)
	}
	if opts.ToolType != nil {
		query += " AND tool_type = ?"
		args = append(args, *opts.ToolType)
	}
	if !opts.IncludeRetired {
		query += " AND retired = 0"
	}
	query += " ORDER BY station_no, tool_id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tooling: %w", err)
	}
	defer rows.Close()

	var tooling []*model.Tooling
	for rows.Next() {
		var tl model.Tooling
		var retired int
		err := rows.Scan(
			&tl.ID, &tl.ProjectID, &tl.StationNo, &tl.ToolID, &tl.ToolType, &tl.GunForce,
			&tl.Status, &tl.PctComplete, &retired, &tl.RowNo, &tl.SourceSheet, &tl.WorkbookID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tooling: %w", err)
		}
		tl.Retired = retired != 0
		tooling = append(tooling, &tl)
	}
	return tooling, rows.Err()
}

// CountTooling counts tooling matching the filter.
func (s *Store) CountTooling(opts ToolingQueryOptions) (int, error) {
	query := "SELECT COUNT(*) FROM tooling WHERE 1=1"
	args := []any{}

	if opts.ProjectID != nil {
		query += " AND project_id = ?"
		args = append(args, *opts.ProjectID)
	}
	if opts.StationNo != nil {
		query += " AND station_no = ?"
		args = append(args, *opts.StationNo)
	}
	if opts.ToolType != nil {
		query += " AND tool_type = ?"
		args = append(args, *opts.ToolType)
	}
	if !opts.IncludeRetired {
		query += " AND retired = 0"
	}

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tooling: %w", err)
	}
	return n, nil
}

// DeleteToolingByWorkbook removes tooling that came from one workbook.
func (s *Store) DeleteToolingByWorkbook(workbookID string) error {
	return s.Exec("DELETE FROM tooling WHERE workbook_id = ?", workbookID)
}
