package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/socialecho/internal/flagx"
)

// ValueFlags lists the flags parseFlags understands. All of them take a value.
var ValueFlags = []string{"-d", "-a", "-id", "-t", "-s", "-c", "-config"}

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so positional commands and foreign
// flags do not reach the flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-a", "-id", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the profile database")
	fs.StringVar(&cfg.TokenURL, "a", cfg.TokenURL, "token endpoint of the auth service")
	fs.StringVar(&cfg.ClientID, "id", cfg.ClientID, "OAuth2 client id")
	fs.StringVar(&cfg.ProfileSecret, "s", cfg.ProfileSecret, "secret used to seal the stored profile")
	refreshTimeout := fs.Int("t", int(cfg.RefreshTimeout.Seconds()), "refresh timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshTimeout = time.Duration(*refreshTimeout) * time.Second
}
