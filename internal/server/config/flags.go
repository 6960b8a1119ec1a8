package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/contactdesk/internal/flagx"
)

// serverFlags lists the flags owned by this package; anything else on the
// command line belongs to the calling binary.
var serverFlags = []string{"-a", "-d", "-l", "-z", "-m", "-i", "-t"}

// parseFlags overlays command-line flags:
//
//	-a string     HTTP bind address (e.g. ":3000")
//	-d string     PostgreSQL DSN
//	-l string     log level
//	-z string     display time zone
//	-m int        max open DB connections
//	-i int        max idle DB connections
//	-t duration   shutdown timeout
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.TimeZone, "z", config.TimeZone, "display time zone")
	fs.IntVar(&config.MaxOpenConns, "m", config.MaxOpenConns, "max open DB connections")
	fs.IntVar(&config.MaxIdleConns, "i", config.MaxIdleConns, "max idle DB connections")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "shutdown timeout")

	return fs.Parse(flagx.FilterArgs(args, serverFlags))
}
