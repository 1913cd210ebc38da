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
	"reflect"
	"testing"

	"github.com/sirseerhq/zenoti-relay/internal/zenoti"
)

func TestNewTableColumnUnion(t *testing.T) {
	records := []zenoti.Vendor{
		{"id": "v1", "name": "Gulf Coffee"},
		{"id": "v2", "name": "Cedar Linen", "city": "Beirut"},
		{"id": "v3", "email": "atlas@example.com"},
	}

	table := NewTable(records)

	// Union of all observed fields, new keys appended as they appear.
	want := []string{"id", "name", "city", "email"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("Columns = %v, want %v", table.Columns, want)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestNewTableEmpty(t *testing.T) {
	table := NewTable(nil)
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
	if len(table.Columns) != 0 {
		t.Errorf("Columns = %v, want empty", table.Columns)
	}
}

func TestTableValue(t *testing.T) {
	table := NewTable([]zenoti.Vendor{
		{"id": "v1", "name": "Gulf Coffee"},
		{"id": "v2"},
	})

	if got := table.Value(0, "name"); got != "Gulf Coffee" {
		t.Errorf("Value(0, name) = %v, want Gulf Coffee", got)
	}
	// Sparse cell
	if got := table.Value(1, "name"); got != nil {
		t.Errorf("Value(1, name) = %v, want nil", got)
	}
	// Out of range
	if got := table.Value(5, "id"); got != nil {
		t.Errorf("Value(5, id) = %v, want nil", got)
	}
}

func TestTableRenameColumn(t *testing.T) {
	table := NewTable([]zenoti.Vendor{
		{"id": "v1", "work_phone": "12345"},
		{"id": "v2"},
	})

	table.RenameColumn("work_phone", "Work Phone")

	if table.HasColumn("work_phone") {
		t.Error("old column name still present")
	}
	if !table.HasColumn("Work Phone") {
		t.Fatal("new column name missing")
	}
	if got := table.Value(0, "Work Phone"); got != "12345" {
		t.Errorf("Value(0, Work Phone) = %v, want 12345", got)
	}
	// Row without the field stays sparse.
	if got := table.Value(1, "Work Phone"); got != nil {
		t.Errorf("Value(1, Work Phone) = %v, want nil", got)
	}
}

func TestTableRenameMissingColumn(t *testing.T) {
	table := NewTable([]zenoti.Vendor{{"id": "v1"}})
	table.RenameColumn("work_phone", "Work Phone")

	if table.HasColumn("Work Phone") {
		t.Error("rename of a missing column must not create it")
	}
}

func TestTableEnsureColumn(t *testing.T) {
	table := NewTable([]zenoti.Vendor{
		{"id": "v1", "center_name": "Downtown"},
		{"id": "v2"},
	})

	table.EnsureColumn("center_name", "")

	if got := table.Value(0, "center_name"); got != "Downtown" {
		t.Errorf("existing value overwritten: got %v", got)
	}
	if got := table.Value(1, "center_name"); got != "" {
		t.Errorf("Value(1, center_name) = %v, want empty string", got)
	}

	// Ensuring a brand-new column appends it.
	table.EnsureColumn("status", "active")
	if table.Columns[len(table.Columns)-1] != "status" {
		t.Errorf("Columns = %v, want status appended last", table.Columns)
	}
	if got := table.Value(0, "status"); got != "active" {
		t.Errorf("Value(0, status) = %v, want active", got)
	}
}

func TestTableApply(t *testing.T) {
	table := NewTable([]zenoti.Vendor{
		{"id": "v1", "work_phone": "111"},
		{"id": "v2"},
	})

	table.Apply("work_phone", func(v any) any {
		if v == nil {
			return ""
		}
		return "normalized"
	})

	if got := table.Value(0, "work_phone"); got != "normalized" {
		t.Errorf("Value(0, work_phone) = %v, want normalized", got)
	}
	// Sparse rows receive fn(nil), same as a column-wise transform.
	if got := table.Value(1, "work_phone"); got != "" {
		t.Errorf("Value(1, work_phone) = %v, want empty string", got)
	}
}

func TestTableApplyMissingColumn(t *testing.T) {
	table := NewTable([]zenoti.Vendor{{"id": "v1"}})

	called := false
	table.Apply("work_phone", func(v any) any {
		called = true
		return v
	})
	if called {
		t.Error("Apply ran on a column that does not exist")
	}
}
