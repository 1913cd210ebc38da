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

// Package zenoti provides a client for the Zenoti vendors REST API and a
// per-organization Fetcher that pages through it. Vendor records are
// open-ended JSON objects; the API does not publish a fixed schema, so
// records are kept as string-keyed maps rather than structs.
//
// The package includes:
//   - A Client interface for fetching a single page of vendors
//   - A REST implementation with apikey authentication
//   - A Fetcher that accumulates all pages for one organization and
//     resolves center IDs to display names
//   - Mock client for testing
//
// Basic usage:
//
//	fetcher := zenoti.NewFetcher(tenants, settings, logger)
//	vendors, err := fetcher.FetchVendors(ctx, "lebanon", start, end)
//	if err != nil {
//	    // Handle error
//	}
//	for _, v := range vendors {
//	    // Process vendor record
//	}
package zenoti
