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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirseerhq/zenoti-relay/internal/apierror"
	relayerrors "github.com/sirseerhq/zenoti-relay/internal/errors"
	"github.com/sirseerhq/zenoti-relay/pkg/version"
)

// dateFormat is the wire format for the start_date and end_date query
// parameters, per the Zenoti API.
const dateFormat = "2006-01-02"

// RESTClient implements the Client interface against the Zenoti REST API.
// A client is bound to a single API key, which in Zenoti terms means a
// single organization.
type RESTClient struct {
	endpoint   string
	httpClient *http.Client
	inspector  apierror.Inspector
}

// NewRESTClient creates a new Zenoti REST client with the provided API key
// and endpoint. The client is configured with:
//   - Authentication via the Zenoti "apikey" authorization scheme
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Optimized connection pooling for API performance
func NewRESTClient(apiKey, endpoint string) *RESTClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			apiKey: apiKey,
			base:   transport,
		},
	}

	return &RESTClient{
		endpoint:   endpoint,
		httpClient: httpClient,
		inspector:  apierror.NewInspector(),
	}
}

// vendorsResponse mirrors the two body shapes the vendors endpoint is known
// to return: records under "vendors", or under "data" on older tenants.
type vendorsResponse struct {
	Vendors []Vendor `json:"vendors"`
	Data    []Vendor `json:"data"`
}

// FetchVendorPage fetches a single page of vendor records. The date range is
// sent as inclusive YYYY-MM-DD bounds. A response with records under neither
// the "vendors" nor the "data" key is treated as an empty page.
func (c *RESTClient) FetchVendorPage(ctx context.Context, opts FetchOptions) (*VendorPage, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(pageSize))
	params.Set("start_date", opts.StartDate.Format(dateFormat))
	params.Set("end_date", opts.EndDate.Format(dateFormat))

	reqURL := c.endpoint + "/v1/vendors?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build vendors request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, c.mapError(fmt.Errorf("zenoti API error: %d - %s", resp.StatusCode, string(body)))
	}

	var parsed vendorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode vendors response: %w", err)
	}

	vendors := parsed.Vendors
	if len(vendors) == 0 {
		vendors = parsed.Data
	}

	return &VendorPage{
		Vendors: vendors,
		Page:    page,
	}, nil
}

// mapError maps transport and HTTP errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("Zenoti API rate limit exceeded. Please wait before retrying: %w", relayerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("Zenoti API authentication failed. Please check the API key in the tenant config: %w", relayerrors.ErrInvalidAPIKey)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to the Zenoti API. Please check your internet connection and try again: %w", relayerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("failed to fetch vendors: %w", err)
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds authentication header and safety limits to HTTP requests
type authTransport struct {
	apiKey string
	base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	// Zenoti uses an "apikey" scheme rather than Bearer
	req.Header.Set("Authorization", "apikey "+t.apiKey)

	req.Header.Set("User-Agent", fmt.Sprintf("zenoti-relay/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Apply response size limit (10MB)
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      10 * 1024 * 1024, // 10MB
		}
	}

	return resp, nil
}
