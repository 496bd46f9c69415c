// Package config loads runtime settings from AIGUIDE_* environment
// variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings. Nothing here changes a verdict or prompt;
// it only affects logging and the host integrations.
type Config struct {
	LogEvents bool   // write session events through slog
	LogFile   string // events go here instead of stderr when set
	ShareURL  string
	Clipboard string // auto, system, osc52 or off
	CopyAck   time.Duration
}

// Default returns the built-in settings. Event logging is off by default.
func Default() Config {
	return Config{
		LogEvents: false,
		ShareURL:  "https://github.com/alexanderramin/aiguide",
		Clipboard: "auto",
		CopyAck:   2 * time.Second,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or unparsable value.
func Load() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv("AIGUIDE_LOG_EVENTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogEvents = b
		}
	}
	if v := getenv("AIGUIDE_LOG_FILE"); v != "" {
		cfg.LogFile = v
		cfg.LogEvents = true
	}
	if v := getenv("AIGUIDE_SHARE_URL"); v != "" {
		cfg.ShareURL = v
	}
	if v := getenv("AIGUIDE_CLIPBOARD"); v != "" {
		cfg.Clipboard = v
	}
	if v := getenv("AIGUIDE_COPY_ACK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CopyAck = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}
