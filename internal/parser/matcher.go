package parser

import (
	"strings"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
)

// Confidence assigned per match source. Pattern hits are near-certain,
// synonym hits depend on how exact the spelling is, fuzzy hits scale with
// token overlap.
const (
	confPattern      = 0.95
	confSynonymExact = 0.9
	confSynonymPart  = 0.7
	fuzzyScale       = 0.65
)

// Matcher projects sheet columns onto the canonical field registry.
type Matcher struct {
	minConfidence float64
}

// NewMatcher creates a matcher. minConfidence below which candidates are
// discarded; zero means the default of 0.4.
func NewMatcher(minConfidence float64) *Matcher {
	if minConfidence <= 0 {
		minConfidence = 0.4
	}
	return &Matcher{minConfidence: minConfidence}
}

// MatchColumns produces at most one match per column: the
// highest-confidence candidate field for that header. Blank headers and
// headers below the confidence floor yield no match. struck marks columns
// whose header carries strikethrough formatting; they are reported with the
// flag set and no field, since a struck header means a retired column.
func (m *Matcher) MatchColumns(kind SheetKind, headers []string, struck map[int]bool) []model.ColumnMatch {
	matches := make([]model.ColumnMatch, 0, len(headers))

	for idx, raw := range headers {
		norm := NormalizeHeader(raw)
		if norm == "" {
			continue
		}
		if struck[idx] {
			matches = append(matches, model.ColumnMatch{
				ColumnIndex: idx,
				ColumnLabel: strings.TrimSpace(raw),
				Struck:      true,
			})
			continue
		}

		field, conf, source := m.bestField(kind, norm)
		if field == "" || conf < m.minConfidence {
			continue
		}
		matches = append(matches, model.ColumnMatch{
			ColumnIndex: idx,
			ColumnLabel: strings.TrimSpace(raw),
			Field:       field,
			Confidence:  conf,
			Source:      source,
		})
	}
	return matches
}

func (m *Matcher) bestField(kind SheetKind, norm string) (string, float64, model.MatchSource) {
	tokens := Tokenize(norm)

	bestID := ""
	bestConf := 0.0
	var bestSource model.MatchSource

	for _, f := range registry {
		if !f.appliesTo(kind) {
			continue
		}
		conf, source := scoreField(f, norm, tokens)
		if conf > bestConf {
			bestID, bestConf, bestSource = f.ID, conf, source
		}
	}
	return bestID, bestConf, bestSource
}

func scoreField(f FieldDef, norm string, tokens []string) (float64, model.MatchSource) {
	for _, p := range f.Patterns {
		if MatchPattern(norm, p) {
			return confPattern, model.MatchSourcePattern
		}
	}

	best := 0.0
	source := model.MatchSourceSynonym
	for _, syn := range f.Synonyms {
		switch {
		case norm == syn:
			return confSynonymExact, model.MatchSourceSynonym
		case strings.Contains(norm, syn) || strings.Contains(syn, norm):
			if confSynonymPart > best {
				best = confSynonymPart
			}
		default:
			if j := Jaccard(tokens, Tokenize(syn)); j*fuzzyScale > best {
				best = j * fuzzyScale
				source = model.MatchSourceFuzzy
			}
		}
	}
	return best, source
}
