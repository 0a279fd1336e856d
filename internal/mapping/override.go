// Package mapping holds user corrections to automatically inferred
// column→field matches and merges them with a sheet's automatic matches into
// the effective mapping the UI renders.
package mapping

import (
	"sort"
	"sync"
	"time"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/prefs"
)

// PrefKey is the preference key the override set persists under.
const PrefKey = "simpilot.mapping.overrides"

// Entry is one active override: the field the user pinned for a column.
type Entry struct {
	Field     string
	CreatedAt time.Time
}

// overrideRecord is the persisted shape. Records rather than a keyed map:
// composite keys flatten to explicit fields, so no delimiter can collide
// and unknown fields from older schema versions are ignored on read.
type overrideRecord struct {
	WorkbookID  string `json:"workbookId"`
	SheetName   string `json:"sheetName"`
	ColumnIndex int    `json:"columnIndex"`
	Field       string `json:"field"`
	CreatedAt   string `json:"createdAt"`
}

// Option configures an OverrideStore.
type Option func(*OverrideStore)

// WithFieldValidator drops hydrated overrides whose field no longer exists
// in the canonical schema.
func WithFieldValidator(valid func(field string) bool) Option {
	return func(s *OverrideStore) { s.fieldValid = valid }
}

// WithPrefKey overrides the preference key, mainly for tests.
func WithPrefKey(key string) Option {
	return func(s *OverrideStore) { s.prefKey = key }
}

// OverrideStore owns the override set for a session. At most one override
// exists per (workbook, sheet, column); a new override for the same key
// replaces the prior one. Every mutation persists the full set so a reload
// restores exact state.
type OverrideStore struct {
	mu         sync.RWMutex
	entries    map[Key]Entry
	prefs      *prefs.Store
	prefKey    string
	fieldValid func(string) bool
	now        func() time.Time
}

// NewOverrideStore creates the store and hydrates it from persisted
// preferences.
func NewOverrideStore(p *prefs.Store, opts ...Option) *OverrideStore {
	s := &OverrideStore{
		entries: make(map[Key]Entry),
		prefs:   p,
		prefKey: PrefKey,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hydrate()
	return s
}

func (s *OverrideStore) hydrate() {
	records := prefs.Read(s.prefs, s.prefKey, []overrideRecord(nil))
	for _, r := range records {
		if r.Field == "" {
			continue
		}
		if s.fieldValid != nil && !s.fieldValid(r.Field) {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			createdAt = s.now()
		}
		s.entries[Key{r.WorkbookID, r.SheetName, r.ColumnIndex}] = Entry{
			Field:     r.Field,
			CreatedAt: createdAt,
		}
	}
}

// Set inserts or replaces the override for a column. Setting the same field
// twice leaves state (and the persisted copy) unchanged. Unknown workbooks
// and sheets are accepted: a correction may be pre-staged before the next
// ingestion run completes.
func (s *OverrideStore) Set(workbookID, sheetName string, columnIndex int, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{workbookID, sheetName, columnIndex}
	if existing, ok := s.entries[key]; ok && existing.Field == field {
		return
	}
	s.entries[key] = Entry{Field: field, CreatedAt: s.now()}
	s.persistLocked()
}

// Clear removes the override for a column. Absent keys are a no-op, not an
// error.
func (s *OverrideStore) Clear(workbookID, sheetName string, columnIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{workbookID, sheetName, columnIndex}
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.persistLocked()
}

// Reset drops every override, used when the ingestion schema changes
// incompatibly or the user asks for a clean slate.
func (s *OverrideStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return
	}
	s.entries = make(map[Key]Entry)
	s.persistLocked()
}

// Get returns the overridden field for a column, if any.
func (s *OverrideStore) Get(workbookID, sheetName string, columnIndex int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[Key{workbookID, sheetName, columnIndex}]
	return e.Field, ok
}

// Count reports the number of overrides held across all workbooks and
// sheets. UI signaling only.
func (s *OverrideStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// SheetCount reports how many overrides exist for one sheet.
func (s *OverrideStore) SheetCount(workbookID, sheetName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for k := range s.entries {
		if k.WorkbookID == workbookID && k.SheetName == sheetName {
			n++
		}
	}
	return n
}

// Apply merges a sheet's automatic matches with the override set: the
// override's field wins when present, otherwise the automatic match passes
// through unchanged. Pure projection: the input slice is never mutated and
// each column costs one lookup. Overrides for columns not present in the
// input are silently ignored.
func (s *OverrideStore) Apply(workbookID, sheetName string, matches []model.ColumnMatch) []model.ColumnMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	effective := make([]model.ColumnMatch, len(matches))
	for i, m := range matches {
		if e, ok := s.entries[Key{workbookID, sheetName, m.ColumnIndex}]; ok {
			m.Field = e.Field
			m.Confidence = 1
			m.Source = model.MatchSourceOverride
		}
		effective[i] = m
	}
	return effective
}

// persistLocked writes the full override set as a deterministically ordered
// record list. Caller holds the write lock.
func (s *OverrideStore) persistLocked() {
	records := make([]overrideRecord, 0, len(s.entries))
	for k, e := range s.entries {
		records = append(records, overrideRecord{
			WorkbookID:  k.WorkbookID,
			SheetName:   k.SheetName,
			ColumnIndex: k.ColumnIndex,
			Field:       e.Field,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.WorkbookID != b.WorkbookID {
			return a.WorkbookID < b.WorkbookID
		}
		if a.SheetName != b.SheetName {
			return a.SheetName < b.SheetName
		}
		return a.ColumnIndex < b.ColumnIndex
	})
	s.prefs.Write(s.prefKey, records)
}
