// simpilot-inspect prints how a workbook would be recognized and mapped,
// without touching any database. Use it when a customer sheet imports
// wrong: it shows the header row the scanner picked, every column's match
// and the struck columns, so the needed override is obvious.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
)

var (
	sheetFlag = flag.String("sheet", "", "inspect only this sheet")
	minConf   = flag.Float64("min", 0, "matcher confidence floor (0 = default)")
	scanRows  = flag.Int("scan", 0, "rows searched for the header (0 = default)")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: simpilot-inspect [flags] workbook.xlsx")
		flag.PrintDefaults()
		os.Exit(2)
	}

	file, err := excelize.OpenFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open workbook: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	recognizer := parser.NewSheetRecognizer(*scanRows)
	matcher := parser.NewMatcher(*minConf)

	for _, sheetName := range file.GetSheetList() {
		if *sheetFlag != "" && sheetName != *sheetFlag {
			continue
		}
		inspectSheet(file, recognizer, matcher, sheetName)
	}
}

func inspectSheet(file *excelize.File, recognizer *parser.SheetRecognizer, matcher *parser.Matcher, sheetName string) {
	rows, err := file.GetRows(sheetName)
	if err != nil {
		fmt.Printf("=== %s: read failed: %v\n\n", sheetName, err)
		return
	}

	rec := recognizer.Recognize(sheetName, rows)
	fmt.Printf("=== %s\n", sheetName)
	fmt.Printf("    kind=%s confidence=%.2f headerRow=%d rows=%d\n",
		rec.SheetKind, rec.Confidence, rec.HeaderRow, len(rows))

	if rec.HeaderRow < 0 || rec.SheetKind == parser.SheetKindUnknown || rec.SheetKind == parser.SheetKindSummary {
		fmt.Println("    no columns to map")
		fmt.Println()
		return
	}

	headers := rows[rec.HeaderRow]
	struck, err := parser.StruckHeaderColumns(file, sheetName, rec.HeaderRow, len(headers))
	if err != nil {
		fmt.Printf("    strikethrough scan failed: %v\n", err)
		struck = map[int]bool{}
	}
	matches := matcher.MatchColumns(rec.SheetKind, headers, struck)

	byColumn := make(map[int]int, len(matches))
	for i, m := range matches {
		byColumn[m.ColumnIndex] = i
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "    col\theader\tnormalized\tfield\tconfidence\tsource")
	for col, raw := range headers {
		norm := parser.NormalizeHeader(raw)
		if norm == "" {
			continue
		}
		field, conf, source := "-", "-", "-"
		if i, ok := byColumn[col]; ok {
			m := matches[i]
			if m.Struck {
				field, source = "-", "struck"
			} else {
				field = m.Field
				conf = fmt.Sprintf("%.2f", m.Confidence)
				source = string(m.Source)
			}
		}
		fmt.Fprintf(w, "    %d\t%s\t%s\t%s\t%s\t%s\n", col, raw, norm, field, conf, source)
	}
	w.Flush()
	fmt.Println()
}
