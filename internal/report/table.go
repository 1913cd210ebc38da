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

package report

import (
	"sort"

	"github.com/sirseerhq/zenoti-relay/internal/zenoti"
)

// Table is a columnar view over open-ended vendor records. Columns are the
// union of field names observed across all rows; rows keep the raw record
// values. Cells missing from a row render as blank in the export.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

// NewTable builds a Table from vendor records. Column order is the order in
// which field names are first observed, walking rows in sequence; keys new to
// a row are appended in sorted order since JSON objects carry no ordering.
func NewTable(records []zenoti.Vendor) *Table {
	t := &Table{}
	seen := make(map[string]bool)

	for _, rec := range records {
		var fresh []string
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				fresh = append(fresh, k)
			}
		}
		sort.Strings(fresh)
		t.Columns = append(t.Columns, fresh...)
		t.Rows = append(t.Rows, map[string]any(rec))
	}

	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the cell value for a row and column, or nil when the row has
// no value for that column.
func (t *Table) Value(row int, column string) any {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	return t.Rows[row][column]
}

// Apply replaces every cell of a column with fn(old). Rows lacking the column
// get fn(nil), which mirrors a column-wise transform over a sparse frame.
// Does nothing when the column does not exist.
func (t *Table) Apply(column string, fn func(any) any) {
	if !t.HasColumn(column) {
		return
	}
	for _, row := range t.Rows {
		row[column] = fn(row[column])
	}
}

// RenameColumn renames a column in place, moving each row's value to the new
// key. Does nothing when the column does not exist.
func (t *Table) RenameColumn(oldName, newName string) {
	renamed := false
	for i, c := range t.Columns {
		if c == oldName {
			t.Columns[i] = newName
			renamed = true
			break
		}
	}
	if !renamed {
		return
	}

	for _, row := range t.Rows {
		if v, ok := row[oldName]; ok {
			row[newName] = v
			delete(row, oldName)
		}
	}
}

// EnsureColumn guarantees the column exists, appending it with the default
// value for every row that lacks one.
func (t *Table) EnsureColumn(name string, def any) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	for _, row := range t.Rows {
		if _, ok := row[name]; !ok {
			row[name] = def
		}
	}
}
