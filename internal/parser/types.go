package parser

// SheetKind classifies an ingested sheet by the equipment family it lists.
type SheetKind string

const (
	SheetKindCSG         SheetKind = "csg"         // CSG station list
	SheetKindRobots      SheetKind = "robots"      // robot equipment list
	SheetKindTooling     SheetKind = "tooling"     // tooling equipment list
	SheetKindAssignments SheetKind = "assignments" // engineer assignment roster
	SheetKindSummary     SheetKind = "summary"     // rollup/pivot sheets, skipped
	SheetKindUnknown     SheetKind = "unknown"
)

// RecognitionResult is the recognizer's verdict for one sheet.
type RecognitionResult struct {
	SheetName  string    `json:"sheetName"`
	SheetKind  SheetKind `json:"sheetKind"`
	Confidence float64   `json:"confidence"` // 0-1
	HeaderRow  int       `json:"headerRow"`  // zero-based index of the detected header row
}

// FieldDef is one canonical field the matcher can project a column onto.
type FieldDef struct {
	ID       string      // canonical identifier, e.g. "robot.simStatus"
	Label    string      // display label
	Kinds    []SheetKind // sheet kinds the field applies to; empty = all
	Patterns []string    // case-insensitive regexes tried first
	Synonyms []string    // lowercase header spellings seen in the wild
}

func (f FieldDef) appliesTo(kind SheetKind) bool {
	if len(f.Kinds) == 0 || kind == SheetKindUnknown {
		return true
	}
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
