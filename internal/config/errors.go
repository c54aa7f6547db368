package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database path or key store directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecurityConfigs indicates an invalid PIN gate policy
	// (for example, a zero attempt limit or lockout duration).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
)
