package store

import (
	"database/sql"
	"fmt"
)

// PreferenceStorage adapts the preferences table to the prefs.Storage
// capability, so mapping overrides and UI preferences persist in the same
// database as the rest of the session.
type PreferenceStorage struct {
	store *Store
}

// Preferences returns the storage adapter.
func (s *Store) Preferences() *PreferenceStorage {
	return &PreferenceStorage{store: s}
}

func (p *PreferenceStorage) GetItem(key string) (string, bool, error) {
	var value string
	err := p.store.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PreferenceStorage) SetItem(key, value string) error {
	_, err := p.store.db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func (p *PreferenceStorage) RemoveItem(key string) error {
	_, err := p.store.db.Exec("DELETE FROM preferences WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to remove preference %s: %w", key, err)
	}
	return nil
}
