// Package config handles configuration for the moderator promotion tool,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the promotion tool.
//
// Fields:
//   - MongoURI: connection string of the MongoDB deployment.
//   - Database: database holding the users and communities collections.
//   - ConnectTimeout: bound for connecting and the initial ping.
//   - NoColor: disables ANSI colours even on a terminal.
type Config struct {
	MongoURI       string
	Database       string
	ConnectTimeout time.Duration
	NoColor        bool
}

// LoadDefaults populates Config with the local development deployment.
func (c *Config) LoadDefaults() {
	c.MongoURI = "mongodb://127.0.0.1:27017"
	c.Database = "db_socialecho"
	c.ConnectTimeout = 10 * time.Second
	c.NoColor = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
