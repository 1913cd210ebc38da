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

import "context"

// Client defines the interface for interacting with the Zenoti vendors API.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchVendorPage retrieves a single page of vendor records. Pagination
	// is page-number based via opts.Page; a page with zero records means
	// the result set is exhausted. The page size can be configured via
	// opts.PageSize.
	FetchVendorPage(ctx context.Context, opts FetchOptions) (*VendorPage, error)
}
