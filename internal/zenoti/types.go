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

package zenoti

import "time"

// Vendor represents a single vendor record as returned by the Zenoti API.
// The record is an open-ended mapping because the set of fields varies by
// tenant and API version. Values are whatever encoding/json produced:
// strings, float64 numbers, bools, nested maps.
type Vendor map[string]any

// VendorPage represents one page of vendor records. The API signals
// exhaustion by returning a page with no records; there is no cursor or
// total count to consult.
type VendorPage struct {
	Vendors []Vendor
	Page    int
}

// FetchOptions configures a single page request against the vendors endpoint.
type FetchOptions struct {
	// Page is the 1-based page number. Values below 1 are treated as 1.
	Page int

	// PageSize controls how many vendors to fetch per page.
	// Defaults to 100 if not specified, which is also the API maximum.
	PageSize int

	// StartDate and EndDate bound the reporting period (inclusive).
	// Sent as YYYY-MM-DD query parameters.
	StartDate time.Time
	EndDate   time.Time
}

// Default values for fetch operations
const (
	defaultPageSize = 100
)
