package config

import "time"

// Config holds runtime settings for the socialecho client.
//
// Fields:
//   - DatabasePath: sqlite file holding the persisted profile.
//   - TokenURL: auth service endpoint accepting the refresh_token grant.
//   - ClientID: OAuth2 client id sent with the refresh request.
//   - RefreshTimeout: upper bound for one refresh exchange.
//   - TokenLeeway: access tokens expiring within this window count as expired.
//   - ProfileSecret: when set, the profile is sealed at rest with a key
//     derived from it.
type Config struct {
	DatabasePath   string
	TokenURL       string
	ClientID       string
	RefreshTimeout time.Duration
	TokenLeeway    time.Duration
	ProfileSecret  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "profile.db"
	c.TokenURL = "http://127.0.0.1:5000/api/auth/token"
	c.ClientID = "socialecho-client"
	c.RefreshTimeout = 10 * time.Second
	c.TokenLeeway = 30 * time.Second
	c.ProfileSecret = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
