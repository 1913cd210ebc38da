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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	relayerrors "github.com/sirseerhq/zenoti-relay/internal/errors"
	"go.uber.org/zap"
)

// Tenants maps organizations to Zenoti API credentials and carries the
// per-API-key center tables used to resolve center IDs to display names.
// The map is loaded once per run and treated as immutable afterwards.
type Tenants struct {
	OrgToAPIKey  map[string]string            `json:"org_to_api_key"`
	CentersByKey map[string]map[string]string `json:"centers_by_key"`
}

// LoadTenants reads the tenant map from a JSON file. The file is re-read on
// every call; nothing is cached. Returns an error wrapping ErrConfigNotFound
// if the file does not exist and ErrConfigInvalid if it is not valid JSON.
func LoadTenants(path string, log *zap.Logger) (*Tenants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, relayerrors.ErrConfigNotFound)
		}
		return nil, fmt.Errorf("failed to read tenant config %s: %w", path, err)
	}

	var tenants Tenants
	if err := json.Unmarshal(data, &tenants); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, relayerrors.ErrConfigInvalid)
	}

	log.Info("loaded tenant configuration",
		zap.String("path", path),
		zap.Int("organizations", len(tenants.OrgToAPIKey)))

	return &tenants, nil
}

// APIKey returns the API key for an organization. Lookup is case-insensitive;
// organization keys are stored lowercase in the tenant file. An organization
// configured with an empty key returns false: it is present in the tenant
// file (HasOrg reports true) but has no usable credential.
func (t *Tenants) APIKey(org string) (string, bool) {
	key, ok := t.OrgToAPIKey[strings.ToLower(org)]
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// HasOrg reports whether an organization appears in the tenant file at all,
// regardless of whether its API key is usable. Lookup is case-insensitive.
func (t *Tenants) HasOrg(org string) bool {
	_, ok := t.OrgToAPIKey[strings.ToLower(org)]
	return ok
}

// Centers returns the center-ID-to-name table for an API key. Returns an
// empty table if the key has no centers configured.
func (t *Tenants) Centers(apiKey string) map[string]string {
	centers, ok := t.CentersByKey[apiKey]
	if !ok {
		return map[string]string{}
	}
	return centers
}

// Orgs returns all configured organization keys in sorted order. Sorting
// keeps fetch order and sheet order stable across runs.
func (t *Tenants) Orgs() []string {
	orgs := make([]string, 0, len(t.OrgToAPIKey))
	for org := range t.OrgToAPIKey {
		orgs = append(orgs, org)
	}
	sort.Strings(orgs)
	return orgs
}
