package parser

import (
	"github.com/xuri/excelize/v2"
)

// Strikethrough formatting is how line engineers retire columns and rows in
// equipment lists without deleting history. Struck headers must not be
// matched; struck data rows import as retired equipment.

// StruckHeaderColumns returns the zero-based column indexes of header cells
// with strikethrough formatting.
func StruckHeaderColumns(f *excelize.File, sheet string, headerRow, width int) (map[int]bool, error) {
	struck := make(map[int]bool)
	for col := 0; col < width; col++ {
		ok, err := cellStruck(f, sheet, col, headerRow)
		if err != nil {
			return nil, err
		}
		if ok {
			struck[col] = true
		}
	}
	return struck, nil
}

// RowStruck reports whether a data row is struck through. Checking the
// first few populated cells is enough: engineers strike whole rows, and
// partial strikes mean an edit in progress, not retirement.
func RowStruck(f *excelize.File, sheet string, rowIdx int, cells []string) (bool, error) {
	checked := 0
	for col, cell := range cells {
		if cell == "" {
			continue
		}
		ok, err := cellStruck(f, sheet, col, rowIdx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		checked++
		if checked >= 3 {
			break
		}
	}
	return checked > 0, nil
}

func cellStruck(f *excelize.File, sheet string, col, row int) (bool, error) {
	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false, err
	}
	styleID, err := f.GetCellStyle(sheet, cellName)
	if err != nil {
		return false, err
	}
	if styleID == 0 {
		return false, nil
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil || style.Font == nil {
		return false, err
	}
	return style.Font.Strike, nil
}
