package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/socialecho/internal/flagx"
	"github.com/dmitrijs2005/socialecho/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-value checks let a file override only the keys it names.
type JsonConfig struct {
	DatabasePath   string          `json:"database_path"`
	TokenURL       string          `json:"token_url"`
	ClientID       string          `json:"client_id"`
	RefreshTimeout *timex.Duration `json:"refresh_timeout"`
	TokenLeeway    *timex.Duration `json:"token_leeway"`
	ProfileSecret  string          `json:"profile_secret"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Without either flag it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.TokenURL != "" {
		cfg.TokenURL = jc.TokenURL
	}
	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.RefreshTimeout != nil {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.TokenLeeway != nil {
		cfg.TokenLeeway = jc.TokenLeeway.Duration
	}
	if jc.ProfileSecret != "" {
		cfg.ProfileSecret = jc.ProfileSecret
	}
}
