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
	"time"

	"github.com/sirseerhq/zenoti-relay/internal/config"
	relayerrors "github.com/sirseerhq/zenoti-relay/internal/errors"
	"go.uber.org/zap"
)

// Fetcher retrieves the complete vendor list for one organization at a time.
// It resolves the organization's API key from the tenant map, pages through
// the vendors endpoint until an empty page, and enriches each record with a
// resolved center name.
//
// Fetches are strictly sequential and make exactly one attempt per page. Any
// transport error aborts the whole organization's fetch with no partial
// results.
type Fetcher struct {
	tenants  *config.Tenants
	endpoint string
	pageSize int
	log      *zap.Logger

	// newClient builds a page client for an API key. Tests replace this to
	// inject a MockClient.
	newClient func(apiKey string) Client
}

// NewFetcher creates a Fetcher backed by the REST client. The endpoint and
// page size come from application settings; the tenant map supplies API keys
// and center tables.
func NewFetcher(tenants *config.Tenants, settings *config.Settings, log *zap.Logger) *Fetcher {
	f := &Fetcher{
		tenants:  tenants,
		endpoint: settings.API.Endpoint,
		pageSize: settings.Defaults.PageSize,
		log:      log,
	}
	f.newClient = func(apiKey string) Client {
		return NewRESTClient(apiKey, f.endpoint)
	}
	return f
}

// NewFetcherForTest creates a Fetcher whose page client is replaced by the
// given client. Intended for tests in other packages; production code should
// use NewFetcher.
func NewFetcherForTest(tenants *config.Tenants, client Client, log *zap.Logger) *Fetcher {
	f := &Fetcher{
		tenants:  tenants,
		pageSize: defaultPageSize,
		log:      log,
	}
	f.newClient = func(string) Client { return client }
	return f
}

// FetchVendors returns every vendor record for org within the inclusive date
// range. Records are enriched in place: a center_id field is replaced by a
// center_name resolved from the organization's center table, falling back to
// the raw ID when unmapped.
//
// Returns an error wrapping ErrMissingAPIKey when the organization has no
// API key configured. Transport errors abort the fetch for the whole
// organization and are returned wrapped with the failing page number.
func (f *Fetcher) FetchVendors(ctx context.Context, org string, start, end time.Time) ([]Vendor, error) {
	apiKey, ok := f.tenants.APIKey(org)
	if !ok {
		f.log.Error("no API key found for organization", zap.String("org", org))
		return nil, fmt.Errorf("organization %q: %w", org, relayerrors.ErrMissingAPIKey)
	}

	client := f.newClient(apiKey)
	centers := f.tenants.Centers(apiKey)

	f.log.Debug("fetching vendors",
		zap.String("org", org),
		zap.Time("start", start),
		zap.Time("end", end))

	var all []Vendor
	for page := 1; ; page++ {
		vp, err := client.FetchVendorPage(ctx, FetchOptions{
			Page:      page,
			PageSize:  f.pageSize,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			f.log.Error("vendor fetch aborted",
				zap.String("org", org),
				zap.Int("page", page),
				zap.Error(err))
			return nil, fmt.Errorf("fetching page %d for %q: %w", page, org, err)
		}

		if len(vp.Vendors) == 0 {
			f.log.Debug("no more vendor data",
				zap.String("org", org),
				zap.Int("page", page))
			break
		}

		for _, vendor := range vp.Vendors {
			resolveCenter(vendor, centers)
		}
		all = append(all, vp.Vendors...)
	}

	return all, nil
}

// resolveCenter replaces a record's center_id with a human-readable
// center_name. The raw ID is removed to avoid duplication in the output;
// unmapped IDs keep the raw ID as the display name.
func resolveCenter(vendor Vendor, centers map[string]string) {
	raw, ok := vendor["center_id"]
	if !ok {
		return
	}

	id := fmt.Sprint(raw)
	name, ok := centers[id]
	if !ok {
		name = id
	}

	vendor["center_name"] = name
	delete(vendor, "center_id")
}
