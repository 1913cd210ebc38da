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

// Package config provides configuration management for zenoti-relay with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Settings file
//  4. Built-in defaults
//
// The package supports YAML settings files with automatic discovery in
// standard locations, and a separate JSON tenant map (see tenants.go) that
// holds per-organization API keys and center tables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSettings loads application settings and applies them in the correct
// precedence order. If settingsPath is provided, it loads from that specific
// file. Otherwise, it searches standard locations:
//   - .zenoti-relay.yaml (current directory)
//   - .zenoti-relay.yml (current directory)
//   - ~/.zenoti/config.yaml
//   - ~/.zenoti/config.yml
//
// Environment variables are applied after loading the settings file, allowing
// runtime overrides. Path expansion (~ and environment variables) is performed
// on file paths.
//
// Returns an error if the specified settings file cannot be loaded, but will
// succeed with defaults if no file is found in standard locations.
func LoadSettings(settingsPath string) (*Settings, error) {
	cfg := DefaultSettings()

	if settingsPath != "" {
		if err := loadSettingsFile(settingsPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load settings file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".zenoti-relay.yaml",
			".zenoti-relay.yml",
			filepath.Join(os.Getenv("HOME"), ".zenoti", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".zenoti", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadSettingsFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.Defaults.TenantsFile = expandPath(cfg.Defaults.TenantsFile)
	cfg.Defaults.OutputDir = expandPath(cfg.Defaults.OutputDir)

	return cfg, nil
}

// loadSettingsFile reads and parses a YAML settings file
func loadSettingsFile(path string, cfg *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to settings
func applyEnvOverrides(cfg *Settings) {
	if endpoint := os.Getenv("ZENOTI_API_ENDPOINT"); endpoint != "" {
		cfg.API.Endpoint = endpoint
	}

	if pageSize := os.Getenv("ZENOTI_PAGE_SIZE"); pageSize != "" {
		if size, err := parsePositiveInt(pageSize); err == nil {
			cfg.Defaults.PageSize = size
		}
	}
	if tenantsFile := os.Getenv("ZENOTI_TENANTS_FILE"); tenantsFile != "" {
		cfg.Defaults.TenantsFile = tenantsFile
	}
	if outputDir := os.Getenv("ZENOTI_OUTPUT_DIR"); outputDir != "" {
		cfg.Defaults.OutputDir = outputDir
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// Validate checks if the settings contain valid values. It ensures the page
// size is within the Zenoti API's limits and the endpoint is not empty. This
// should be called after loading settings to catch invalid values early.
func (s *Settings) Validate() error {
	if s.Defaults.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got: %d", s.Defaults.PageSize)
	}
	if s.Defaults.PageSize > 100 {
		return fmt.Errorf("page size %d exceeds Zenoti API limit of 100", s.Defaults.PageSize)
	}
	if s.API.Endpoint == "" {
		return fmt.Errorf("Zenoti API endpoint cannot be empty")
	}
	if s.Defaults.ReportName == "" {
		return fmt.Errorf("report name cannot be empty")
	}
	return nil
}
