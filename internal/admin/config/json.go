package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/socialecho/internal/flagx"
	"github.com/dmitrijs2005/socialecho/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	MongoURI       string          `json:"mongo_uri"`
	Database       string          `json:"database"`
	ConnectTimeout *timex.Duration `json:"connect_timeout"`
	NoColor        *bool           `json:"no_color"`
}

// parseJson overlays Config with the JSON file given by -c or -config.
// Keys missing from the file keep their current value. Read or decode
// errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.MongoURI != "" {
		cfg.MongoURI = jc.MongoURI
	}
	if jc.Database != "" {
		cfg.Database = jc.Database
	}
	if jc.ConnectTimeout != nil {
		cfg.ConnectTimeout = jc.ConnectTimeout.Duration
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}
}
