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

// Package config types define the configuration structures used throughout
// zenoti-relay. Settings can be loaded from YAML configuration files,
// environment variables, or command-line flags; the tenant map (organizations,
// API keys and center tables) is a separate JSON file maintained by operations.
package config

// Settings represents the complete application settings for zenoti-relay.
// It consolidates values from various sources and provides a unified
// interface for accessing configuration throughout the application.
type Settings struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// APIConfig contains Zenoti-specific settings. A custom endpoint allows
// pointing the tool at a sandbox or mock deployment.
type APIConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// DefaultsConfig contains default settings that apply to all fetch operations
// unless overridden by command-line flags. These settings control the core
// behavior of the fetch and export process.
type DefaultsConfig struct {
	PageSize    int    `yaml:"page_size"`
	TenantsFile string `yaml:"tenants_file"`
	OutputDir   string `yaml:"output_dir"`
	ReportName  string `yaml:"report_name"`
}

// DefaultSettings returns Settings with sensible defaults suitable for most
// use cases. These defaults target the public Zenoti API but can be
// overridden for sandbox deployments or special requirements.
func DefaultSettings() *Settings {
	return &Settings{
		API: APIConfig{
			Endpoint: "https://api.zenoti.com",
		},
		Defaults: DefaultsConfig{
			PageSize:    100,
			TenantsFile: "~/.zenoti/centers.json",
			OutputDir:   "reports",
			ReportName:  "vendors",
		},
	}
}
