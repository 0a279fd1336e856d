package model

// MatchSource tells where a column match came from, so the UI can badge
// confidence accordingly.
type MatchSource string

const (
	MatchSourcePattern  MatchSource = "pattern"
	MatchSourceSynonym  MatchSource = "synonym"
	MatchSourceFuzzy    MatchSource = "fuzzy"
	MatchSourceOverride MatchSource = "override"
)

// ColumnMatch is one inferred association between a sheet column and a
// canonical field. Matches are immutable once produced; a new ingestion run
// produces a new set.
type ColumnMatch struct {
	ColumnIndex int         `json:"columnIndex"`
	ColumnLabel string      `json:"columnLabel"`
	Field       string      `json:"field"`
	Confidence  float64     `json:"confidence"`
	Source      MatchSource `json:"source"`
	Struck      bool        `json:"struck,omitempty"` // header cell had strikethrough formatting
}
