package store

import (
	"fmt"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// BatchInsertAssignments writes a roster sheet's worth of assignments in
// one transaction.
func (s *Store) BatchInsertAssignments(records []*model.Assignment) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO assignments (
			project_id, engineer, station_no, phase, row_no, source_sheet, workbook_id
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ProjectID, r.Engineer, r.StationNo, r.Phase, r.RowNo, r.SourceSheet, r.WorkbookID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListAssignments returns assignments for a project ordered by engineer.
func (s *Store) ListAssignments(projectID int64) ([]*model.Assignment, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, engineer, station_no, phase, row_no, source_sheet, workbook_id
		FROM assignments WHERE project_id = ?
		ORDER BY engineer, station_no
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*model.Assignment
	for rows.Next() {
		var a model.Assignment
		err := rows.Scan(&a.ID, &a.ProjectID, &a.Engineer, &a.StationNo, &a.Phase, &a.RowNo, &a.SourceSheet, &a.WorkbookID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

// DeleteAssignmentsByWorkbook removes assignments that came from one
// workbook.
func (s *Store) DeleteAssignmentsByWorkbook(workbookID string) error {
	return s.Exec("DELETE FROM assignments WHERE workbook_id = ?", workbookID)
}
