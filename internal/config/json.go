package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can use human-readable
// strings ("30s", "5m") instead of nanosecond integers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string or a bare integer
// (interpreted as nanoseconds, matching encoding/json's default).
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, parseErr := time.ParseDuration(asString)
		if parseErr != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, parseErr)
		}
		d.Duration = parsed
		return nil
	}

	var asInt int64
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("duration must be a string or integer: %w", err)
	}
	d.Duration = time.Duration(asInt)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and string
// durations for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Keystore struct {
			Dir string `json:"dir"`
		} `json:"keystore,omitempty"`

		Preferences struct {
			Dir string `json:"dir"`
		} `json:"preferences,omitempty"`
	} `json:"storage,omitempty"`

	Security struct {
		MaxFailedAttempts     int      `json:"max_failed_attempts"`
		LockedOutDuration     Duration `json:"locked_out_duration"`
		SessionExpiryDuration Duration `json:"session_expiry_duration"`
	} `json:"security,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding a json file: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{Version: jsonCfg.App.Version},
		Storage: Storage{
			DB:          DB{DSN: jsonCfg.Storage.DB.DSN},
			Keystore:    Keystore{Dir: jsonCfg.Storage.Keystore.Dir},
			Preferences: Preferences{Dir: jsonCfg.Storage.Preferences.Dir},
		},
		Security: Security{
			MaxFailedAttempts:     jsonCfg.Security.MaxFailedAttempts,
			LockedOutDuration:     jsonCfg.Security.LockedOutDuration.Duration,
			SessionExpiryDuration: jsonCfg.Security.SessionExpiryDuration.Duration,
		},
	}

	return cfg, nil
}
