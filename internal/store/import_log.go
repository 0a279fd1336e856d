package store

import "fmt"

// CreateImportLog opens an import log entry, returning its id.
func (s *Store) CreateImportLog(workbookID, filename, filePath string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (workbook_id, filename, file_path, file_size, status)
		VALUES (?, ?, ?, ?, 'processing')
	`, workbookID, filename, filePath, fileSize)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// CompleteImportLog finalizes an import log entry.
func (s *Store) CompleteImportLog(id int64, totalSheets, importedSheets, skippedSheets, totalRows, importedRows, errorRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_sheets = ?,
			imported_sheets = ?,
			skipped_sheets = ?,
			total_rows = ?,
			imported_rows = ?,
			error_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalSheets, importedSheets, skippedSheets, totalRows, importedRows, errorRows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LastImportTime returns the completion time of the most recent successful
// import, or empty when none exists.
func (s *Store) LastImportTime() (string, error) {
	var completedAt string
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(completed_at), '') FROM import_logs WHERE status = 'done'
	`).Scan(&completedAt)
	if err != nil {
		return "", fmt.Errorf("failed to query import logs: %w", err)
	}
	return completedAt, nil
}
