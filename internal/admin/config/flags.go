package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/socialecho/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   MongoDB connection URI
//	-d string   database name
//	-t int      connect timeout, seconds
//	-nocolor    plain output without ANSI colours
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d", "-t", "-nocolor"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.MongoURI, "u", config.MongoURI, "MongoDB connection URI")
	fs.StringVar(&config.Database, "d", config.Database, "database name")
	fs.BoolVar(&config.NoColor, "nocolor", config.NoColor, "disable coloured output")
	connectTimeout := fs.Int("t", int(config.ConnectTimeout.Seconds()), "connect timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ConnectTimeout = time.Duration(*connectTimeout) * time.Second
}
