package mapping

// Key identifies one column of one ingested sheet. It is a proper value
// type with defined equality rather than a delimiter-joined string, so
// identifiers containing any particular character can never collide.
type Key struct {
	WorkbookID  string
	SheetName   string
	ColumnIndex int
}
