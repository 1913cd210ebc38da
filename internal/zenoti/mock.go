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

import (
	"context"
	"fmt"

	relayerrors "github.com/sirseerhq/zenoti-relay/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Pages holds the vendor pages to serve, indexed by page number - 1.
	// Requests past the last page return an empty page.
	Pages [][]Vendor

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// FailAtPage makes the client fail with Error (or a network error)
	// starting at the given 1-based page. Zero disables it.
	FailAtPage int

	// Track calls for verification
	CallCount int
	LastOpts  FetchOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Pages: [][]Vendor{generateTestVendors()},
	}
}

// FetchVendorPage implements the Client interface
func (m *MockClient) FetchVendorPage(ctx context.Context, opts FetchOptions) (*VendorPage, error) {
	m.CallCount++
	m.LastOpts = opts

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}

	if m.FailAtPage > 0 && page >= m.FailAtPage {
		if m.Error != nil {
			return nil, m.Error
		}
		return nil, fmt.Errorf("network timeout: %w", relayerrors.ErrNetworkFailure)
	}

	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", relayerrors.ErrInvalidAPIKey)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", relayerrors.ErrNetworkFailure)
	}

	if m.Error != nil {
		return nil, m.Error
	}

	if page <= len(m.Pages) {
		return &VendorPage{Vendors: m.Pages[page-1], Page: page}, nil
	}
	return &VendorPage{Page: page}, nil
}

// generateTestVendors creates sample vendor data for testing
func generateTestVendors() []Vendor {
	return []Vendor{
		{
			"id":         "v-1001",
			"name":       "Gulf Coffee Supplies",
			"center_id":  "C1",
			"work_phone": map[string]any{"phone_code": float64(971), "number": "501234567"},
		},
		{
			"id":         "v-1002",
			"name":       "Cedar Linen Co",
			"center_id":  "C2",
			"work_phone": "9611234567",
		},
		{
			"id":   "v-1003",
			"name": "Atlas Equipment",
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPages sets specific vendor pages to serve
func WithPages(pages [][]Vendor) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// WithNetworkFailure makes the client simulate a network failure
func WithNetworkFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailNetwork = true
	}
}

// WithFailAtPage makes the client fail once pagination reaches the given page
func WithFailAtPage(page int) MockClientOption {
	return func(m *MockClient) {
		m.FailAtPage = page
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
