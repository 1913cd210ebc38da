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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct missing api key error",
			err:      ErrMissingAPIKey,
			sentinel: ErrMissingAPIKey,
			want:     true,
		},
		{
			name:     "wrapped missing api key error",
			err:      fmt.Errorf("organization %q: %w", "lebanon", ErrMissingAPIKey),
			sentinel: ErrMissingAPIKey,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrConfigNotFound,
			sentinel: ErrMissingAPIKey,
			want:     false,
		},
		{
			name:     "wrapped network error",
			err:      fmt.Errorf("fetching page 3: %w", ErrNetworkFailure),
			sentinel: ErrNetworkFailure,
			want:     true,
		},
		{
			name:     "doubly wrapped config error",
			err:      fmt.Errorf("loading tenants: %w", fmt.Errorf("open /etc/zenoti.json: %w", ErrConfigNotFound)),
			sentinel: ErrConfigNotFound,
			want:     true,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrMissingAPIKey,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.sentinel)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrConfigNotFound, "tenant config file not found"},
		{ErrConfigInvalid, "tenant config file is not valid JSON"},
		{ErrMissingAPIKey, "no api key for organization"},
		{ErrInvalidAPIKey, "invalid zenoti api key"},
		{ErrNoValidOrgs, "no valid organizations in config"},
		{ErrNetworkFailure, "network connection failed"},
		{ErrRateLimit, "zenoti rate limit exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
