// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirseerhq/zenoti-relay/internal/report"
	"github.com/sirseerhq/zenoti-relay/internal/zenoti"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func testTable() *report.Table {
	t := report.NewTable([]zenoti.Vendor{
		{"id": "v1", "name": "Gulf Coffee", "center_name": "Downtown"},
		{"id": "v2", "name": "Cedar Linen"},
	})
	t.EnsureColumn("center_name", "")
	return t
}

// cellAt returns a cell from a GetRows result, tolerating truncated rows.
func cellAt(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

func TestExcelWriterWritesWorkbook(t *testing.T) {
	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "nested", "reports")

	writer, err := NewExcelWriter(outputDir, "vendors", "2025-10-06", zap.NewNop())
	if err != nil {
		t.Fatalf("NewExcelWriter failed: %v", err)
	}

	if err := writer.WriteSheet("lebanon", testTable()); err != nil {
		t.Fatalf("WriteSheet failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	wantPath := filepath.Join(outputDir, "vendors_2025-10-06.xlsx")
	if writer.Path() != wantPath {
		t.Errorf("Path() = %s, want %s", writer.Path(), wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}

	f, err := excelize.OpenFile(wantPath)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if !reflect.DeepEqual(sheets, []string{"lebanon"}) {
		t.Errorf("sheets = %v, want [lebanon] (default sheet dropped)", sheets)
	}

	rows, err := f.GetRows("lebanon")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3 (header + 2 rows)", len(rows))
	}

	// Header is the column names, no index column in front.
	wantHeader := []string{"center_name", "id", "name"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	if got := cellAt(rows, 1, 1); got != "v1" {
		t.Errorf("cell B2 = %q, want v1", got)
	}
	if got := cellAt(rows, 1, 0); got != "Downtown" {
		t.Errorf("cell A2 = %q, want Downtown", got)
	}
	// Row without a center keeps the blank default.
	if got := cellAt(rows, 2, 0); got != "" {
		t.Errorf("cell A3 = %q, want blank", got)
	}
}

func TestExcelWriterMultipleSheets(t *testing.T) {
	tmpDir := t.TempDir()

	reports := map[string]*report.Table{
		"lebanon": testTable(),
		"kuwait":  report.NewTable(nil),
		"qatar":   testTable(),
	}

	path, err := ExportReports(reports, tmpDir, "vendors", "2025-10-06", zap.NewNop())
	if err != nil {
		t.Fatalf("ExportReports failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	// Sheets come out in sorted org order for stable reruns.
	want := []string{"kuwait", "lebanon", "qatar"}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, want %v", got, want)
	}
}

func TestExcelWriterOrgNamedLikePlaceholder(t *testing.T) {
	// An organization keyed exactly like the workbook's placeholder sheet
	// keeps its data; the placeholder is claimed by rename, never deleted
	// out from under a real sheet.
	tmpDir := t.TempDir()

	writer, err := NewExcelWriter(tmpDir, "vendors", "2025-10-06", zap.NewNop())
	if err != nil {
		t.Fatalf("NewExcelWriter failed: %v", err)
	}

	if err := writer.WriteSheet("Sheet1", testTable()); err != nil {
		t.Fatalf("WriteSheet failed: %v", err)
	}
	if err := writer.WriteSheet("lebanon", testTable()); err != nil {
		t.Fatalf("WriteSheet failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := excelize.OpenFile(writer.Path())
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Sheet1", "lebanon"}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("row count = %d, want header plus data", len(rows))
	}
}

func TestExcelWriterEmptyTable(t *testing.T) {
	tmpDir := t.TempDir()

	writer, err := NewExcelWriter(tmpDir, "vendors", "2025-10-06", zap.NewNop())
	if err != nil {
		t.Fatalf("NewExcelWriter failed: %v", err)
	}

	empty := report.NewTable(nil)
	empty.EnsureColumn("center_name", "")

	if err := writer.WriteSheet("kuwait", empty); err != nil {
		t.Fatalf("WriteSheet failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := excelize.OpenFile(writer.Path())
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("kuwait")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1 (header only)", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"center_name"}) {
		t.Errorf("header = %v, want [center_name]", rows[0])
	}
}

func TestExcelWriterDirectoryCreationFailure(t *testing.T) {
	tmpDir := t.TempDir()

	// A file standing where the directory should go.
	blocker := filepath.Join(tmpDir, "reports")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}

	_, err := NewExcelWriter(blocker, "vendors", "2025-10-06", zap.NewNop())
	if err == nil {
		t.Fatal("expected error when output dir cannot be created")
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "nil becomes blank",
			in:   nil,
			want: "",
		},
		{
			name: "string passes through",
			in:   "hello",
			want: "hello",
		},
		{
			name: "number passes through",
			in:   float64(42),
			want: float64(42),
		},
		{
			name: "bool passes through",
			in:   true,
			want: true,
		},
		{
			name: "nested map is json encoded",
			in:   map[string]any{"k": "v"},
			want: `{"k":"v"}`,
		},
		{
			name: "slice is json encoded",
			in:   []any{"a", "b"},
			want: `["a","b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellValue(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cellValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
