package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirseerhq/zenoti-relay/internal/report"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExcelWriter writes report tables into a single .xlsx workbook, one sheet
// per organization. The workbook is assembled in memory and persisted on
// Close.
type ExcelWriter struct {
	file   *excelize.File
	path   string
	log    *zap.Logger
	sheets int
}

var _ ReportWriter = (*ExcelWriter)(nil)

// NewExcelWriter creates the output directory (including parents) and an
// empty workbook targeting {outputDir}/{reportName}_{dateStr}.xlsx.
func NewExcelWriter(outputDir, reportName, dateStr string, log *zap.Logger) (*ExcelWriter, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("%s_%s.xlsx", reportName, dateStr))

	return &ExcelWriter{
		file: excelize.NewFile(),
		path: path,
		log:  log,
	}, nil
}

// Path returns the workbook's target path.
func (w *ExcelWriter) Path() string {
	return w.path
}

// WriteSheet adds one organization's table as a named sheet: a header row of
// column names followed by the data rows, no index column. Cells missing
// from a row are left blank.
func (w *ExcelWriter) WriteSheet(name string, table *report.Table) error {
	if w.sheets == 0 {
		// The first organization claims the workbook's placeholder sheet.
		// Renaming instead of deleting later keeps an organization that
		// happens to share the placeholder's name intact.
		if def := w.file.GetSheetName(0); !strings.EqualFold(def, name) {
			if err := w.file.SetSheetName(def, name); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", name, err)
			}
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	header := make([]any, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := w.file.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for sheet %q: %w", name, err)
	}

	for i := 0; i < table.Len(); i++ {
		row := make([]any, len(table.Columns))
		for j, col := range table.Columns {
			row[j] = cellValue(table.Value(i, col))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell reference: %w", err)
		}
		if err := w.file.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %q: %w", i+1, name, err)
		}
	}

	w.sheets++
	w.log.Info("wrote sheet",
		zap.String("sheet", name),
		zap.Int("rows", table.Len()))

	return nil
}

// Close saves the workbook and releases resources. A workbook with no
// sheets written keeps the empty placeholder sheet; xlsx files must contain
// at least one sheet.
func (w *ExcelWriter) Close() error {
	defer w.file.Close()

	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", w.path, err)
	}

	w.log.Info("saved workbook",
		zap.String("path", w.path),
		zap.Int("sheets", w.sheets))

	return nil
}

// cellValue renders a cell for the spreadsheet. Scalars pass through; nested
// values that survived normalization are JSON-encoded rather than dropped.
func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return ""
	case string, bool, float64, int, int64:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// ExportReports writes every organization's table into a single workbook at
// {outputDir}/{reportName}_{dateStr}.xlsx and returns the workbook path.
// Sheets are written in sorted organization order so reruns produce
// byte-comparable workbooks.
func ExportReports(reports map[string]*report.Table, outputDir, reportName, dateStr string, log *zap.Logger) (string, error) {
	writer, err := NewExcelWriter(outputDir, reportName, dateStr, log)
	if err != nil {
		return "", err
	}

	orgs := make([]string, 0, len(reports))
	for org := range reports {
		orgs = append(orgs, org)
	}
	sort.Strings(orgs)

	for _, org := range orgs {
		if err := writer.WriteSheet(org, reports[org]); err != nil {
			writer.file.Close()
			return "", err
		}
	}

	if err := writer.Close(); err != nil {
		return "", err
	}
	return writer.Path(), nil
}
