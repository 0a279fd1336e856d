package parser

import "strings"

const defaultHeaderScan = 10

// SheetRecognizer classifies a sheet by its header row and name.
type SheetRecognizer struct {
	headerScan int
}

// NewSheetRecognizer creates a recognizer. headerScan is how many leading
// rows are searched for the header; zero means the default of 10. Customer
// workbooks with long title banners need a deeper scan.
func NewSheetRecognizer(headerScan int) *SheetRecognizer {
	if headerScan <= 0 {
		headerScan = defaultHeaderScan
	}
	return &SheetRecognizer{headerScan: headerScan}
}

// kindSignature is the set of header spellings whose presence identifies a
// sheet kind. Confidence is the hit ratio plus a name boost.
type kindSignature struct {
	kind      SheetKind
	keyFields []string // regex alternations matched against normalized headers
	nameHints []string // lowercase sheet-name fragments
}

var signatures = []kindSignature{
	{
		kind: SheetKindRobots,
		keyFields: []string{
			`robot`,
			`station`,
			`model|type`,
			`oem|manufacturer`,
			`sim(ulation)? status`,
			`reach`,
			`application|process`,
		},
		nameHints: []string{"robot", "rob list", "equipment"},
	},
	{
		kind: SheetKindTooling,
		keyFields: []string{
			`tool|gun|gripper`,
			`station`,
			`(tool|gun) type`,
			`force`,
			`status`,
		},
		nameHints: []string{"tool", "gun", "gripper", "fixture"},
	},
	{
		kind: SheetKindCSG,
		keyFields: []string{
			`station`,
			`area|zone|line`,
			`csg`,
			`complete|progress`,
			`engineer`,
		},
		nameHints: []string{"csg", "station list", "stations"},
	},
	{
		kind: SheetKindAssignments,
		keyFields: []string{
			`engineer|resource|name`,
			`station`,
			`phase|milestone|activity`,
		},
		nameHints: []string{"assign", "roster", "resourc", "engineer"},
	},
}

var summaryNameHints = []string{"summary", "overview", "rollup", "pivot", "dashboard", "totals"}

// Recognize scores the sheet against every known kind and returns the best
// verdict. HeaderRow is filled from header disambiguation over the supplied
// rows; a sheet whose best score stays below 0.5 comes back unknown.
func (r *SheetRecognizer) Recognize(sheetName string, rows [][]string) RecognitionResult {
	nameLower := strings.ToLower(sheetName)

	headerRow := LocateHeaderRow(rows, r.headerScan)
	if headerRow < 0 {
		if ContainsAny(nameLower, summaryNameHints) {
			return RecognitionResult{SheetName: sheetName, SheetKind: SheetKindSummary, Confidence: 0.8, HeaderRow: -1}
		}
		return RecognitionResult{SheetName: sheetName, SheetKind: SheetKindUnknown, HeaderRow: -1}
	}

	normalized := make([]string, len(rows[headerRow]))
	for i, h := range rows[headerRow] {
		normalized[i] = NormalizeHeader(h)
	}

	best := RecognitionResult{
		SheetName: sheetName,
		SheetKind: SheetKindUnknown,
		HeaderRow: headerRow,
	}
	for _, sig := range signatures {
		conf := scoreSignature(sig, nameLower, normalized)
		if conf > best.Confidence {
			best.SheetKind = sig.kind
			best.Confidence = conf
		}
	}

	if best.Confidence < 0.5 {
		if ContainsAny(nameLower, summaryNameHints) {
			return RecognitionResult{SheetName: sheetName, SheetKind: SheetKindSummary, Confidence: 0.8, HeaderRow: headerRow}
		}
		best.SheetKind = SheetKindUnknown
	}
	return best
}

func scoreSignature(sig kindSignature, nameLower string, headers []string) float64 {
	hits := 0
	for _, field := range sig.keyFields {
		for _, h := range headers {
			if h != "" && MatchPattern(h, field) {
				hits++
				break
			}
		}
	}
	conf := float64(hits) / float64(len(sig.keyFields))

	if ContainsAny(nameLower, sig.nameHints) {
		conf += 0.2
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}
