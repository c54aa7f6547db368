package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultDataDirName is the per-user directory everything lives under when
// no explicit paths are configured.
const defaultDataDirName = ".spendless"

// defaultConfig is the last merge layer: it fills any field the env, flag
// and JSON sources left unset, so a bare `spendless` invocation works out
// of the box.
func defaultConfig() *StructuredConfig {
	dataDir := defaultDataDir()

	return &StructuredConfig{
		Storage: Storage{
			DB:          DB{DSN: filepath.Join(dataDir, "spendless.db")},
			Keystore:    Keystore{Dir: filepath.Join(dataDir, "keystore")},
			Preferences: Preferences{Dir: filepath.Join(dataDir, "prefs")},
		},
		Security: Security{
			MaxFailedAttempts:     3,
			LockedOutDuration:     30 * time.Second,
			SessionExpiryDuration: 5 * time.Minute,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory when HOME is unset.
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}
