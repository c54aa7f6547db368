// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Keystore.Dir == "" || cfg.Storage.Preferences.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Security.MaxFailedAttempts <= 0 {
		return ErrInvalidSecurityConfigs
	}
	if cfg.Security.LockedOutDuration <= 0 || cfg.Security.SessionExpiryDuration <= 0 {
		return ErrInvalidSecurityConfigs
	}

	return nil
}
