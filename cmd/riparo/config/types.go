// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

type RiparoConfig struct {
	// Backend: where the municipal API lives
	Backend BackendConfig `yaml:"backend"`

	// Storage: local session, cache, and log locations
	Storage StorageConfig `yaml:"storage"`

	// Logging: verbosity and output shape
	Logging LoggingConfig `yaml:"logging"`

	// UI: dashboard presentation knobs
	UI UIConfig `yaml:"ui"`
}

type BackendConfig struct {
	// BaseURL is the backend origin, e.g. http://localhost:8000.
	// The /api prefix is appended by the client, not configured here.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds every single HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	// SessionDir holds the token and profile files. Default ~/.riparo.
	SessionDir string `yaml:"session_dir"`

	// CachePath is the sqlite file for the offline report cache.
	// Empty disables caching entirely.
	CachePath string `yaml:"cache_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`             // debug, info, warn, error
	LogDir string `yaml:"log_dir,omitempty"` // empty disables the file sink
	JSON   bool   `yaml:"json"`
}

type UIConfig struct {
	// PerPage is the page size for staff report and feedback listings.
	PerPage int `yaml:"per_page"`
}

// DefaultConfig returns the config written on first run.
func DefaultConfig() RiparoConfig {
	return RiparoConfig{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 30,
		},
		Storage: StorageConfig{
			SessionDir: "~/.riparo",
			CachePath:  "~/.riparo/reports.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			PerPage: 10,
		},
	}
}
