package parser

// Equipment exports rarely put the header in row one: title banners, logo
// rows and merged group headers come first. LocateHeaderRow scans the first
// maxScan rows and picks the densest plausible header row.
//
// A row scores one point per distinct non-empty textual cell; numeric cells
// don't count (they indicate a data row). Ties go to the earliest row. The
// return value is a zero-based index; -1 means no plausible header was
// found.
func LocateHeaderRow(rows [][]string, maxScan int) int {
	if maxScan <= 0 || maxScan > len(rows) {
		maxScan = len(rows)
	}

	best := -1
	bestScore := 0
	for i := 0; i < maxScan; i++ {
		score := headerScore(rows[i])
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if bestScore < 3 {
		return -1
	}
	return best
}

func headerScore(row []string) int {
	seen := make(map[string]bool, len(row))
	score := 0
	for _, cell := range row {
		norm := NormalizeHeader(cell)
		if norm == "" || looksNumeric(norm) || seen[norm] {
			continue
		}
		seen[norm] = true
		score++
	}
	return score
}
