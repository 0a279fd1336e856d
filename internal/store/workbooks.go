package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// InsertWorkbook records an ingested workbook.
func (s *Store) InsertWorkbook(wb model.Workbook) error {
	_, err := s.db.Exec(`
		INSERT INTO workbooks (id, project_id, filename, file_size, sheet_count)
		VALUES (?, ?, ?, ?, ?)
	`, wb.ID, wb.ProjectID, wb.Filename, wb.FileSize, wb.SheetCount)
	if err != nil {
		return fmt.Errorf("failed to insert workbook: %w", err)
	}
	return nil
}

// GetWorkbook fetches one workbook.
func (s *Store) GetWorkbook(id string) (*model.Workbook, error) {
	var wb model.Workbook
	err := s.db.QueryRow(`
		SELECT id, project_id, filename, file_size, sheet_count, uploaded_at
		FROM workbooks WHERE id = ?
	`, id).Scan(&wb.ID, &wb.ProjectID, &wb.Filename, &wb.FileSize, &wb.SheetCount, &wb.UploadedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workbook not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get workbook: %w", err)
	}
	return &wb, nil
}

// ListWorkbooks returns all workbooks, newest first.
func (s *Store) ListWorkbooks() ([]*model.Workbook, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, filename, file_size, sheet_count, uploaded_at
		FROM workbooks ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workbooks: %w", err)
	}
	defer rows.Close()

	var workbooks []*model.Workbook
	for rows.Next() {
		var wb model.Workbook
		if err := rows.Scan(&wb.ID, &wb.ProjectID, &wb.Filename, &wb.FileSize, &wb.SheetCount, &wb.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workbook: %w", err)
		}
		workbooks = append(workbooks, &wb)
	}
	return workbooks, rows.Err()
}

// InsertSheetMeta records how a sheet was recognized and mapped.
// Re-ingesting the same sheet replaces the prior record.
func (s *Store) InsertSheetMeta(meta model.SheetMeta) error {
	_, err := s.db.Exec(`
		INSERT INTO sheets_meta (
			workbook_id, sheet_name, sheet_kind, confidence, header_row,
			total_rows, total_columns, imported_rows,
			columns_json, mapping_json,
			status, error_message, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(workbook_id, sheet_name) DO UPDATE SET
			sheet_kind = excluded.sheet_kind,
			confidence = excluded.confidence,
			header_row = excluded.header_row,
			total_rows = excluded.total_rows,
			total_columns = excluded.total_columns,
			imported_rows = excluded.imported_rows,
			columns_json = excluded.columns_json,
			mapping_json = excluded.mapping_json,
			status = excluded.status,
			error_message = excluded.error_message,
			source_file = excluded.source_file
	`,
		meta.WorkbookID, meta.SheetName, meta.SheetKind, meta.Confidence, meta.HeaderRow,
		meta.TotalRows, meta.TotalColumns, meta.ImportedRows,
		meta.ColumnsJSON, meta.MappingJSON,
		meta.Status, meta.ErrorMessage, meta.SourceFile,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sheets_meta: %w", err)
	}
	return nil
}

// GetSheetMeta fetches the metadata for one sheet of a workbook.
func (s *Store) GetSheetMeta(workbookID, sheetName string) (*model.SheetMeta, error) {
	row := s.db.QueryRow(`
		SELECT id, workbook_id, sheet_name, sheet_kind, confidence, header_row,
		       total_rows, total_columns, imported_rows,
		       columns_json, mapping_json, status, error_message, source_file
		FROM sheets_meta WHERE workbook_id = ? AND sheet_name = ?
	`, workbookID, sheetName)

	var m model.SheetMeta
	err := row.Scan(
		&m.ID, &m.WorkbookID, &m.SheetName, &m.SheetKind, &m.Confidence, &m.HeaderRow,
		&m.TotalRows, &m.TotalColumns, &m.ImportedRows,
		&m.ColumnsJSON, &m.MappingJSON, &m.Status, &m.ErrorMessage, &m.SourceFile,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sheet not found: %s/%s", workbookID, sheetName)
		}
		return nil, fmt.Errorf("failed to get sheets_meta: %w", err)
	}
	return &m, nil
}

// ListSheetMeta returns the metadata for all sheets of a workbook.
func (s *Store) ListSheetMeta(workbookID string) ([]*model.SheetMeta, error) {
	rows, err := s.db.Query(`
		SELECT id, workbook_id, sheet_name, sheet_kind, confidence, header_row,
		       total_rows, total_columns, imported_rows,
		       columns_json, mapping_json, status, error_message, source_file
		FROM sheets_meta WHERE workbook_id = ? ORDER BY id
	`, workbookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sheets_meta: %w", err)
	}
	defer rows.Close()

	var metas []*model.SheetMeta
	for rows.Next() {
		var m model.SheetMeta
		err := rows.Scan(
			&m.ID, &m.WorkbookID, &m.SheetName, &m.SheetKind, &m.Confidence, &m.HeaderRow,
			&m.TotalRows, &m.TotalColumns, &m.ImportedRows,
			&m.ColumnsJSON, &m.MappingJSON, &m.Status, &m.ErrorMessage, &m.SourceFile,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sheets_meta: %w", err)
		}
		metas = append(metas, &m)
	}
	return metas, rows.Err()
}

// BuildColumnsJSON serializes header labels for sheets_meta storage.
func BuildColumnsJSON(columns []string) string {
	b, err := json.Marshal(columns)
	if err != nil {
		return "[]"
	}
	return string(b)
}
