// Package prefs is a small persistence façade over an injected key/value
// storage capability. Reads and writes never fail from the caller's point of
// view: storage errors and malformed persisted data are absorbed at this
// boundary and logged, and the caller always gets a usable value. Preference
// loss is non-fatal.
package prefs

import (
	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/stablejson"
)

// Store reads and writes typed preference values through a Storage backend.
type Store struct {
	storage Storage
	log     *zap.Logger
}

// New creates a preference store. A nil logger defaults to a nop logger so
// logging stays optional.
func New(storage Storage, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{storage: storage, log: log}
}

// Read returns the value stored under key, or fallback when the key is
// absent, the stored text does not parse, or the storage capability itself
// fails. Reads never raise.
func Read[T any](s *Store, key string, fallback T) T {
	raw, ok, err := s.storage.GetItem(key)
	if err != nil {
		s.log.Warn("preference read failed, using fallback",
			zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	return stablejson.SafeUnmarshal(raw, fallback)
}

// Write serializes value canonically and stores it under key. Failures are
// logged and swallowed; callers cannot distinguish a successful write from a
// silently-failed one except via logs.
func (s *Store) Write(key string, value any) {
	text, err := stablejson.MarshalString(value)
	if err != nil {
		s.log.Warn("preference value not serializable, write dropped",
			zap.String("key", key), zap.Error(err))
		return
	}

	// Skip the backend write when the canonical bytes are unchanged.
	if prev, ok, err := s.storage.GetItem(key); err == nil && ok && prev == text {
		return
	}

	if err := s.storage.SetItem(key, text); err != nil {
		s.log.Warn("preference write failed",
			zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes the key. Missing keys and storage failures are not errors.
func (s *Store) Remove(key string) {
	if err := s.storage.RemoveItem(key); err != nil {
		s.log.Warn("preference remove failed",
			zap.String("key", key), zap.Error(err))
	}
}
