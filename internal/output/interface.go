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

import "github.com/sirseerhq/zenoti-relay/internal/report"

// ReportWriter defines the interface for writing per-organization report
// tables. This abstraction allows for different output formats to be
// implemented without changing the core logic.
type ReportWriter interface {
	// WriteSheet adds one organization's table under the given sheet name.
	WriteSheet(name string, table *report.Table) error

	// Close finalizes the artifact and releases any resources.
	// This must be called when all sheets have been written; for file-backed
	// formats nothing is persisted until Close.
	Close() error
}
