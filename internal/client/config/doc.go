// Package config loads runtime configuration for the socialecho client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the profile database
//	-a string   token endpoint of the auth service
//	-id string  OAuth2 client id
//	-t int      refresh timeout (seconds)
//	-s string   profile secret; enables sealing of the stored profile
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or
// integer nanoseconds. Keys left out keep their earlier value:
//
//	{
//	  "database_path": "profile.db",
//	  "token_url": "http://127.0.0.1:5000/api/auth/token",
//	  "client_id": "socialecho-client",
//	  "refresh_timeout": "10s",
//	  "token_leeway": "30s",
//	  "profile_secret": ""
//	}
package config
