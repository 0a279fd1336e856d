// Package importer drives workbook ingestion: sheet recognition, column
// matching, override application and batch persistence, reporting progress
// over a channel the upload endpoint streams to the browser.
package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/mapping"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/model"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/parser"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/stablejson"
	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/store"
)

// Coordinator runs workbook imports end to end.
type Coordinator struct {
	store      *store.Store
	overrides  *mapping.OverrideStore
	recognizer *parser.SheetRecognizer
	matcher    *parser.Matcher
	log        *zap.Logger
}

// Options tunes the ingestion pipeline. Zero values pick the parser
// defaults.
type Options struct {
	HeaderScanRows int     // rows searched for the header, default 10
	MinConfidence  float64 // matcher confidence floor, default 0.4
}

// NewCoordinator wires the import pipeline.
func NewCoordinator(st *store.Store, overrides *mapping.OverrideStore, log *zap.Logger, opts Options) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		store:      st,
		overrides:  overrides,
		recognizer: parser.NewSheetRecognizer(opts.HeaderScanRows),
		matcher:    parser.NewMatcher(opts.MinConfidence),
		log:        log,
	}
}

// Request describes one import run.
type Request struct {
	FilePath    string
	Filename    string // original upload name; FilePath base when empty
	FileSize    int64
	ProjectCode string // defaults to UNASSIGNED
	WorkbookID  string // reuse to re-ingest an existing workbook; empty assigns a new id
}

// Import runs the ingestion in the background and returns its progress
// stream. The channel closes after the final done or error event.
func (c *Coordinator) Import(ctx context.Context, req Request) <-chan ProgressEvent {
	events := make(chan ProgressEvent, 100)
	go func() {
		defer close(events)
		c.doImport(ctx, req, events)
	}()
	return events
}

// Run is the synchronous form of Import, draining progress internally.
func (c *Coordinator) Run(ctx context.Context, req Request) (*ImportReport, error) {
	var report *ImportReport
	var failure error
	for evt := range c.Import(ctx, req) {
		switch evt.Type {
		case "done":
			if r, ok := evt.Data.(*ImportReport); ok {
				report = r
			}
		case "error":
			failure = fmt.Errorf("%s", evt.Message)
		}
	}
	if failure != nil {
		return nil, failure
	}
	return report, nil
}

func (c *Coordinator) doImport(ctx context.Context, req Request, events chan ProgressEvent) {
	startTime := time.Now()

	filename := req.Filename
	if filename == "" {
		filename = filepath.Base(req.FilePath)
	}

	c.sendProgress(events, ProgressEvent{
		Type:      "start",
		Message:   "importing workbook",
		Data:      map[string]string{"filename": filename},
		Timestamp: time.Now(),
	})

	file, err := excelize.OpenFile(req.FilePath)
	if err != nil {
		c.fail(ctx, events, fmt.Sprintf("open workbook: %v", err))
		return
	}
	defer file.Close()

	projectCode := req.ProjectCode
	if projectCode == "" {
		projectCode = "UNASSIGNED"
	}
	project, err := c.store.UpsertProject(projectCode, "", "", "")
	if err != nil {
		c.fail(ctx, events, fmt.Sprintf("upsert project: %v", err))
		return
	}

	sheetList := file.GetSheetList()

	workbookID := req.WorkbookID
	if workbookID == "" {
		workbookID = uuid.NewString()
	}
	if _, err := c.store.GetWorkbook(workbookID); err != nil {
		wb := model.Workbook{
			ID:         workbookID,
			ProjectID:  project.ID,
			Filename:   filename,
			FileSize:   req.FileSize,
			SheetCount: len(sheetList),
		}
		if err := c.store.InsertWorkbook(wb); err != nil {
			c.fail(ctx, events, fmt.Sprintf("insert workbook: %v", err))
			return
		}
	} else if err := c.clearWorkbook(workbookID); err != nil {
		c.fail(ctx, events, fmt.Sprintf("clear prior import: %v", err))
		return
	}

	logID, err := c.store.CreateImportLog(workbookID, filename, req.FilePath, req.FileSize)
	if err != nil {
		c.fail(ctx, events, fmt.Sprintf("create import log: %v", err))
		return
	}

	report := &ImportReport{
		WorkbookID:  workbookID,
		Filename:    filename,
		TotalSheets: len(sheetList),
	}

	c.sendProgress(events, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("found %d sheets", len(sheetList)),
		Data:      map[string]int{"totalSheets": len(sheetList)},
		Timestamp: time.Now(),
	})

	for _, sheetName := range sheetList {
		if ctx.Err() != nil {
			c.finishLog(logID, report, "error", ctx.Err().Error())
			c.fail(ctx, events, "import cancelled")
			return
		}
		c.processSheet(ctx, file, project.ID, workbookID, sheetName, report, events)
	}

	report.Duration = time.Since(startTime)
	c.finishLog(logID, report, "done", "")

	c.log.Info("workbook imported",
		zap.String("workbook_id", workbookID),
		zap.String("filename", filename),
		zap.Int("imported_sheets", report.ImportedSheets),
		zap.Int("imported_rows", report.ImportedRows),
		zap.Duration("duration", report.Duration),
	)

	c.sendFinal(ctx, events, ProgressEvent{
		Type:      "done",
		Message:   "import complete",
		Data:      report,
		Timestamp: time.Now(),
	})
}

func (c *Coordinator) processSheet(ctx context.Context, file *excelize.File, projectID int64, workbookID, sheetName string, report *ImportReport, events chan ProgressEvent) {
	sheetStart := time.Now()

	c.sendProgress(events, ProgressEvent{
		Type:      "sheet_start",
		Message:   fmt.Sprintf("processing sheet %q", sheetName),
		Data:      map[string]string{"sheetName": sheetName},
		Timestamp: time.Now(),
	})

	rows, err := file.GetRows(sheetName)
	if err != nil {
		c.recordSheet(report, events, SheetResult{
			SheetName: sheetName,
			SheetKind: parser.SheetKindUnknown,
			Status:    "error",
			Errors:    []string{fmt.Sprintf("read sheet: %v", err)},
			Duration:  time.Since(sheetStart),
		}, model.SheetMeta{WorkbookID: workbookID, SheetName: sheetName})
		return
	}

	recognition := c.recognizer.Recognize(sheetName, rows)

	c.sendProgress(events, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("sheet %q recognized as %s (confidence %.2f)", sheetName, recognition.SheetKind, recognition.Confidence),
		Data: map[string]any{
			"sheetName":  sheetName,
			"sheetKind":  recognition.SheetKind,
			"confidence": recognition.Confidence,
			"headerRow":  recognition.HeaderRow,
		},
		Timestamp: time.Now(),
	})

	meta := model.SheetMeta{
		WorkbookID: workbookID,
		SheetName:  sheetName,
		SheetKind:  string(recognition.SheetKind),
		Confidence: recognition.Confidence,
		HeaderRow:  recognition.HeaderRow,
		TotalRows:  len(rows),
	}

	switch recognition.SheetKind {
	case parser.SheetKindSummary, parser.SheetKindUnknown:
		reason := "summary sheet, nothing to import"
		evtType := "info"
		if recognition.SheetKind == parser.SheetKindUnknown {
			reason = "sheet kind not recognized"
			evtType = "warning"
		}
		c.sendProgress(events, ProgressEvent{
			Type:      evtType,
			Message:   fmt.Sprintf("skipping sheet %q: %s", sheetName, reason),
			Timestamp: time.Now(),
		})
		c.recordSheet(report, events, SheetResult{
			SheetName: sheetName,
			SheetKind: recognition.SheetKind,
			Status:    "skipped",
			Duration:  time.Since(sheetStart),
		}, meta)
		return
	}

	headers := rows[recognition.HeaderRow]
	meta.TotalColumns = len(headers)
	meta.ColumnsJSON = store.BuildColumnsJSON(headers)

	struck, err := parser.StruckHeaderColumns(file, sheetName, recognition.HeaderRow, len(headers))
	if err != nil {
		c.log.Warn("strikethrough scan failed, assuming no struck headers",
			zap.String("sheet", sheetName), zap.Error(err))
		struck = map[int]bool{}
	}

	matches := c.matcher.MatchColumns(recognition.SheetKind, headers, struck)
	meta.MappingJSON = stablejson.SafeMarshalString(matches, "[]")

	effective := c.overrides.Apply(workbookID, sheetName, matches)
	idx := indexByField(effective)

	result := c.importRows(file, rows, recognition, rowContext{
		projectID:  projectID,
		workbookID: workbookID,
		sheetName:  sheetName,
	}, idx)
	result.Duration = time.Since(sheetStart)

	meta.ImportedRows = result.ImportedRows
	c.recordSheet(report, events, result, meta)
}

// importRows walks the data rows below the header and persists them by
// sheet kind.
func (c *Coordinator) importRows(file *excelize.File, rows [][]string, rec parser.RecognitionResult, ctx rowContext, idx fieldIndex) SheetResult {
	result := SheetResult{
		SheetName: rec.SheetName,
		SheetKind: rec.SheetKind,
		Status:    "imported",
	}

	var stations []*model.Station
	var robots []*model.Robot
	var tooling []*model.Tooling
	var assignments []*model.Assignment

	for rowIdx := rec.HeaderRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if emptyRow(row) {
			continue
		}
		ctx.rowNo = rowIdx
		ctx.retired = false

		// Struck-through rows import as retired equipment rather than
		// vanishing from the dashboard.
		if rec.SheetKind == parser.SheetKindRobots || rec.SheetKind == parser.SheetKindTooling {
			retired, err := parser.RowStruck(file, rec.SheetName, rowIdx, row)
			if err == nil {
				ctx.retired = retired
			}
		}

		switch rec.SheetKind {
		case parser.SheetKindCSG:
			if st := buildStation(ctx, row, idx); st != nil {
				stations = append(stations, st)
			} else {
				result.SkippedRows++
			}
		case parser.SheetKindRobots:
			if r := buildRobot(ctx, row, idx); r != nil {
				robots = append(robots, r)
			} else {
				result.SkippedRows++
			}
		case parser.SheetKindTooling:
			if tl := buildTooling(ctx, row, idx); tl != nil {
				tooling = append(tooling, tl)
			} else {
				result.SkippedRows++
			}
		case parser.SheetKindAssignments:
			if a := buildAssignment(ctx, row, idx); a != nil {
				assignments = append(assignments, a)
			} else {
				result.SkippedRows++
			}
		}
	}

	persist := func(n int, err error) {
		if err != nil {
			result.Status = "error"
			result.ErrorRows += n
			result.Errors = append(result.Errors, err.Error())
			return
		}
		result.ImportedRows += n
	}
	if len(stations) > 0 {
		persist(len(stations), c.store.BatchUpsertStations(stations))
	}
	if len(robots) > 0 {
		persist(len(robots), c.store.BatchInsertRobots(robots))
	}
	if len(tooling) > 0 {
		persist(len(tooling), c.store.BatchInsertTooling(tooling))
	}
	if len(assignments) > 0 {
		persist(len(assignments), c.store.BatchInsertAssignments(assignments))
	}
	return result
}

func (c *Coordinator) recordSheet(report *ImportReport, events chan ProgressEvent, result SheetResult, meta model.SheetMeta) {
	report.Sheets = append(report.Sheets, result)
	report.TotalRows += result.ImportedRows + result.SkippedRows + result.ErrorRows
	report.ImportedRows += result.ImportedRows
	report.ErrorRows += result.ErrorRows
	switch result.Status {
	case "imported":
		report.ImportedSheets++
	case "skipped":
		report.SkippedSheets++
	}

	meta.Status = result.Status
	if len(result.Errors) > 0 {
		meta.ErrorMessage = result.Errors[0]
	}
	if err := c.store.InsertSheetMeta(meta); err != nil {
		c.log.Warn("record sheet meta failed",
			zap.String("sheet", result.SheetName), zap.Error(err))
	}

	c.sendProgress(events, ProgressEvent{
		Type:      "sheet_done",
		Message:   fmt.Sprintf("sheet %q %s (%d rows)", result.SheetName, result.Status, result.ImportedRows),
		Data:      result,
		Timestamp: time.Now(),
	})
}

// clearWorkbook drops all records from a prior ingestion of the same
// workbook so a re-import replaces rather than duplicates.
func (c *Coordinator) clearWorkbook(workbookID string) error {
	if err := c.store.DeleteStationsByWorkbook(workbookID); err != nil {
		return err
	}
	if err := c.store.DeleteRobotsByWorkbook(workbookID); err != nil {
		return err
	}
	if err := c.store.DeleteToolingByWorkbook(workbookID); err != nil {
		return err
	}
	return c.store.DeleteAssignmentsByWorkbook(workbookID)
}

func (c *Coordinator) finishLog(logID int64, report *ImportReport, status, errMsg string) {
	err := c.store.CompleteImportLog(logID,
		report.TotalSheets, report.ImportedSheets, report.SkippedSheets,
		report.TotalRows, report.ImportedRows, report.ErrorRows,
		status, errMsg,
	)
	if err != nil {
		c.log.Warn("finalize import log failed", zap.Error(err))
	}
}

func (c *Coordinator) fail(ctx context.Context, events chan ProgressEvent, msg string) {
	c.log.Error("import failed", zap.String("reason", msg))
	c.sendFinal(ctx, events, ProgressEvent{
		Type:      "error",
		Message:   msg,
		Timestamp: time.Now(),
	})
}

// sendProgress delivers without blocking; a stalled consumer loses
// intermediate events, never the import.
func (c *Coordinator) sendProgress(events chan ProgressEvent, evt ProgressEvent) {
	select {
	case events <- evt:
	default:
	}
}

// sendFinal waits for the consumer. The terminal done or error event is the
// one a slow reader must still receive, or Run would report nothing at all.
func (c *Coordinator) sendFinal(ctx context.Context, events chan ProgressEvent, evt ProgressEvent) {
	select {
	case events <- evt:
	case <-ctx.Done():
	}
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
