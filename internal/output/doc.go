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

// Package output writes finished reports to disk. The current implementation
// produces a single Excel workbook with one sheet per organization; the
// ReportWriter interface leaves room for other formats (CSV, NDJSON) without
// changing the core logic.
//
// Example usage:
//
//	w, err := output.NewExcelWriter("reports", "vendors", "2025-10-06", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, org := range orgs {
//	    if err := w.WriteSheet(org, reports[org]); err != nil {
//	        return err
//	    }
//	}
//	if err := w.Close(); err != nil {
//	    return err
//	}
package output
