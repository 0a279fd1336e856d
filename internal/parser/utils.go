package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// unit suffixes commonly appended to equipment-list headers, e.g.
// "Gun Force (kN)" or "Progress [%]".
var unitSuffix = regexp.MustCompile(`\s*[\(\[](kn|kg|mm|s|%|sec)[\)\]]\s*$`)

// NormalizeHeader flattens a raw header cell to a canonical lowercase form:
// line breaks and tabs removed, whitespace collapsed, trailing unit
// suffixes dropped.
func NormalizeHeader(name string) string {
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	name = spaceRun.ReplaceAllString(name, " ")
	name = strings.TrimSpace(strings.ToLower(name))
	name = unitSuffix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// Tokenize splits a normalized header into word tokens.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '%'
	})
	return fields
}

// Jaccard is token-set similarity in [0,1].
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	inter := 0
	union := len(set)
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if seen[t] {
			continue
		}
		seen[t] = true
		if set[t] {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

// MatchPattern reports whether text matches the case-insensitive pattern.
// Invalid patterns never match.
func MatchPattern(text, pattern string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// ContainsAny reports whether text contains any of the keywords.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// looksNumeric reports whether a cell parses as a number, used to tell data
// rows from header rows.
func looksNumeric(cell string) bool {
	cell = strings.TrimSpace(strings.TrimSuffix(cell, "%"))
	if cell == "" {
		return false
	}
	_, err := strconv.ParseFloat(cell, 64)
	return err == nil
}

// ParsePercent reads a percentage cell that may be "62.5", "62.5%" or a
// 0-1 fraction, returning a 0-100 value.
func ParsePercent(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	hadSign := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if !hadSign && v <= 1 {
		v *= 100
	}
	return v, true
}
