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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrConfigNotFound indicates the tenant configuration file does not exist.
	// Maps to exit code 2.
	ErrConfigNotFound = errors.New("tenant config file not found")

	// ErrConfigInvalid indicates the tenant configuration file is not valid JSON.
	// Maps to exit code 2.
	ErrConfigInvalid = errors.New("tenant config file is not valid JSON")

	// ErrMissingAPIKey indicates no API key is configured for an organization.
	// Maps to exit code 2.
	ErrMissingAPIKey = errors.New("no api key for organization")

	// ErrInvalidAPIKey indicates Zenoti rejected the configured API key.
	// Maps to exit code 2.
	ErrInvalidAPIKey = errors.New("invalid zenoti api key")

	// ErrNoValidOrgs indicates none of the requested organizations exist in
	// the tenant configuration. Maps to exit code 2.
	ErrNoValidOrgs = errors.New("no valid organizations in config")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates the Zenoti API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("zenoti rate limit exceeded")
)
