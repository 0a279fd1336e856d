package store

import (
	"database/sql"
	"fmt"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// UpsertProject inserts a project by code or returns the existing one.
func (s *Store) UpsertProject(code, name, customer, plant string) (*model.Project, error) {
	_, err := s.db.Exec(`
		INSERT INTO projects (code, name, customer, plant) VALUES (?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = CASE WHEN excluded.name != '' THEN excluded.name ELSE projects.name END,
			customer = CASE WHEN excluded.customer != '' THEN excluded.customer ELSE projects.customer END,
			plant = CASE WHEN excluded.plant != '' THEN excluded.plant ELSE projects.plant END
	`, code, name, customer, plant)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert project: %w", err)
	}
	return s.GetProjectByCode(code)
}

// GetProjectByCode fetches a project by its program code.
func (s *Store) GetProjectByCode(code string) (*model.Project, error) {
	row := s.db.QueryRow(`
		SELECT id, code, name, customer, plant, created_at
		FROM projects WHERE code = ?
	`, code)
	return scanProject(row)
}

// GetProject fetches a project by id.
func (s *Store) GetProject(id int64) (*model.Project, error) {
	row := s.db.QueryRow(`
		SELECT id, code, name, customer, plant, created_at
		FROM projects WHERE id = ?
	`, id)
	return scanProject(row)
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects() ([]*model.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, code, name, customer, plant, created_at
		FROM projects ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(r rowScanner) (*model.Project, error) {
	var p model.Project
	err := r.Scan(&p.ID, &p.Code, &p.Name, &p.Customer, &p.Plant, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &p, nil
}
