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

// Package report turns raw vendor records into finished per-organization
// tables: one fetch per organization, phone normalization, column renames,
// and the guaranteed center-name column.
package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirseerhq/zenoti-relay/internal/config"
	relayerrors "github.com/sirseerhq/zenoti-relay/internal/errors"
	"github.com/sirseerhq/zenoti-relay/internal/zenoti"
	"go.uber.org/zap"
)

// Field names in raw records and their display labels.
const (
	phoneColumn  = "work_phone"
	phoneLabel   = "Work Phone"
	centerColumn = "center_name"
)

// VendorSource abstracts the vendor fetcher so the builder can be tested
// without HTTP.
type VendorSource interface {
	FetchVendors(ctx context.Context, org string, start, end time.Time) ([]zenoti.Vendor, error)
}

var _ VendorSource = (*zenoti.Fetcher)(nil)

// Builder orchestrates fetches across organizations and converts the results
// into finished tables. One failed organization fails the whole build; there
// is deliberately no partial-success reporting.
type Builder struct {
	tenants *config.Tenants
	source  VendorSource
	log     *zap.Logger
}

// NewBuilder creates a Builder over the given vendor source.
func NewBuilder(tenants *config.Tenants, source VendorSource, log *zap.Logger) *Builder {
	return &Builder{
		tenants: tenants,
		source:  source,
		log:     log,
	}
}

// Build fetches and formats vendor data for the given organizations over the
// inclusive date range. Organizations without a tenant entry are dropped
// (case-insensitive match); if none remain the build fails with
// ErrNoValidOrgs. An organization that is configured but has an empty API
// key survives the filter so its fetch fails the build with
// ErrMissingAPIKey rather than being skipped. Fetches run sequentially in
// input order, and any fetch error aborts the entire build.
//
// The returned map is keyed by the organization keys as given.
func (b *Builder) Build(ctx context.Context, orgs []string, start, end time.Time) (map[string]*Table, error) {
	b.log.Info("building vendors report",
		zap.Strings("organizations", orgs),
		zap.Time("start", start),
		zap.Time("end", end))

	var valid []string
	for _, org := range orgs {
		if b.tenants.HasOrg(org) {
			valid = append(valid, org)
		} else {
			b.log.Warn("skipping organization not present in tenant config", zap.String("org", org))
		}
	}
	if len(valid) == 0 {
		return nil, relayerrors.ErrNoValidOrgs
	}

	reports := make(map[string]*Table, len(valid))
	for _, org := range valid {
		vendors, err := b.source.FetchVendors(ctx, org, start, end)
		if err != nil {
			return nil, fmt.Errorf("building report for %q: %w", org, err)
		}

		table := NewTable(vendors)
		b.normalizePhones(org, table)
		table.RenameColumn(phoneColumn, phoneLabel)
		table.EnsureColumn(centerColumn, "")

		reports[org] = table
		b.log.Debug("organization report ready",
			zap.String("org", org),
			zap.Int("vendors", table.Len()))
	}

	return reports, nil
}

// normalizePhones collapses the work_phone column to a single display string
// per row.
func (b *Builder) normalizePhones(org string, t *Table) {
	if !t.HasColumn(phoneColumn) {
		return
	}
	t.Apply(phoneColumn, func(raw any) any {
		return b.normalizePhone(org, raw)
	})
}

// normalizePhone coerces a raw work_phone value to a display string.
//
// Scalars are stringified, with zero values mapping to "". Phone objects
// concatenate a non-zero phone_code with the number; an empty number always
// yields "". Shapes the API should never produce are logged and mapped to ""
// rather than failing the build.
func (b *Builder) normalizePhone(org string, raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if !v {
			return ""
		}
		return "true"
	case map[string]any:
		number := scalarString(v["number"])
		if number == "" {
			return ""
		}
		if code := phoneCodeString(v["phone_code"]); code != "" {
			return code + number
		}
		return number
	default:
		b.log.Warn("unexpected work_phone shape, defaulting to empty",
			zap.String("org", org),
			zap.Any("value", raw))
		return ""
	}
}

// scalarString renders a scalar cell value as a string, with nil and zero
// mapping to "".
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == 0 {
			return ""
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// phoneCodeString renders a phone_code value, treating zero, empty and "0"
// as absent.
func phoneCodeString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case float64:
		if c == 0 {
			return ""
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case string:
		if c == "" || c == "0" {
			return ""
		}
		return c
	default:
		return ""
	}
}
