package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	ConfigFile string `short:"c" long:"config" env:"ALBUM_BIFF_CONFIG" required:"true" description:"Path to the album configuration file"`
	Timeout    int    `long:"timeout" env:"ALBUM_BIFF_TIMEOUT" default:"30" description:"HTTP request timeout in seconds"`
	UserAgent  string `long:"user-agent" env:"ALBUM_BIFF_USER_AGENT" description:"User agent string for HTTP requests"`
	DryRun     bool   `short:"n" long:"dry-run" description:"Log what would be sent without sending email or updating state"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses flags and environment variables. A nil Cfg with a nil error
// means help was requested and the caller should exit cleanly.
func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ConfigFile: raw.ConfigFile,
		Timeout:    raw.Timeout,
		UserAgent:  cmp.Or(raw.UserAgent, fmt.Sprintf("album-biff/%s", GetVersion())),
		DryRun:     raw.DryRun,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	return cfg, nil
}
