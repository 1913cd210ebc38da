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

// Package main implements the zenoti-relay command-line interface.
// This tool fetches vendor data from the Zenoti API for every configured
// organization and exports it to a single Excel workbook, one sheet per
// organization.
//
// The CLI supports:
//   - Fetching all configured organizations (default behavior)
//   - Restricting the run to specific organizations via positional args
//   - A custom reporting window via --since and --until
//   - Customizable output directory and report name
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	zenoti-relay fetch [org...] [flags]
//
// Example:
//
//	zenoti-relay fetch --tenants ~/.zenoti/centers.json --output-dir ./reports
//	zenoti-relay fetch lebanon kuwait --since 2025-09-01 --until 2025-09-30
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration/authentication error
//   - 3: Network error
package main
