// Package bootstrap sets zerolog's global level during package
// initialization. cmd/dela's main blank-imports it, so the level is in place
// before main runs any command; the command package's own init()s may run
// before this one, and none of them logs.
package bootstrap

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/delacli/dela/internal/config"
)

func init() {
	level := os.Getenv(config.EnvLogLevel)
	if level == "" {
		if isatty.IsTerminal(os.Stderr.Fd()) {
			level = "info"
		} else {
			level = "warn"
		}
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
}
