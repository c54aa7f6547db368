// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// SpendLess application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the local
	// database, the key store directory and the preferences directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Security holds the PIN gate policy: attempt limits and the default
	// lockout and session-expiry durations used before the user picks
	// their own in settings.
	Security Security `envPrefix:"SECURITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application. Everything lives on the local device; there is no remote
// persistence.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`

	// Keystore holds the secure key store settings.
	Keystore Keystore `envPrefix:"KEYSTORE_"`

	// Preferences holds the encrypted preference store settings.
	Preferences Preferences `envPrefix:"PREFERENCES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path
	// (e.g. "/home/user/.spendless/spendless.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Keystore holds settings for the on-device secure key store.
type Keystore struct {
	// Dir is the directory holding wrapped key entries.
	// Env: STORAGE_KEYSTORE_DIR
	Dir string `env:"DIR"`
}

// Preferences holds settings for the encrypted preference store.
type Preferences struct {
	// Dir is the directory holding encrypted preference blobs.
	// Env: STORAGE_PREFERENCES_DIR
	Dir string `env:"DIR"`
}

// Security holds the PIN gate policy knobs. The duration values here are
// initial defaults; the user-selected values live in the encrypted
// UserSecurity preference.
type Security struct {
	// MaxFailedAttempts is the number of consecutive failed PIN checks
	// that triggers a lockout window.
	// Env: SECURITY_MAX_FAILED_ATTEMPTS
	MaxFailedAttempts int `env:"MAX_FAILED_ATTEMPTS"`

	// LockedOutDuration is the default lockout window length
	// (e.g. "30s", "1m").
	// Env: SECURITY_LOCKED_OUT_DURATION
	LockedOutDuration time.Duration `env:"LOCKED_OUT_DURATION"`

	// SessionExpiryDuration is the default background time after which
	// the PIN gate is shown again (e.g. "5m", "1h").
	// Env: SECURITY_SESSION_EXPIRY_DURATION
	SessionExpiryDuration time.Duration `env:"SESSION_EXPIRY_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults for anything still unset
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
