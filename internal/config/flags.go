package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-keystore-dir key store directory
//	-prefs-dir encrypted preferences directory
//	-c/-config json file path with configs
//	-max-failed-attempts failed PIN checks before lockout
//	-locked-out-duration lockout window length (e.g., "30s", "1m")
//	-session-expiry-duration background time before re-prompting the PIN
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var keystoreDir string
	var prefsDir string
	var jsonConfigPath string
	var maxFailedAttempts int
	var lockedOutDuration time.Duration
	var sessionExpiryDuration time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&keystoreDir, "keystore-dir", "", "Key store directory")
	flag.StringVar(&prefsDir, "prefs-dir", "", "Encrypted preferences directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&maxFailedAttempts, "max-failed-attempts", 0, "Failed PIN checks before lockout")
	flag.DurationVar(&lockedOutDuration, "locked-out-duration", 0, "Lockout window (e.g., 30s, 1m)")
	flag.DurationVar(&sessionExpiryDuration, "session-expiry-duration", 0, "Session expiry (e.g., 5m, 1h)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB:          DB{DSN: databaseDSN},
			Keystore:    Keystore{Dir: keystoreDir},
			Preferences: Preferences{Dir: prefsDir},
		},
		Security: Security{
			MaxFailedAttempts:     maxFailedAttempts,
			LockedOutDuration:     lockedOutDuration,
			SessionExpiryDuration: sessionExpiryDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}
