package types

import (
	"time"

	"github.com/juju/errors"
)

// Config carries everything the daemon needs for one deployment. Values come
// from BALE_ environment variables first, command line flags override them.
type Config struct {
	SourceURL    string        `envconfig:"SOURCE_URL" default:"https://ip-ranges.amazonaws.com/ip-ranges.json"`
	OutputDir    string        `envconfig:"OUTPUT_DIR" default:"."`
	Interval     time.Duration `envconfig:"INTERVAL" default:"24h"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	SkipInvalid  bool          `envconfig:"SKIP_INVALID"`
	LogFile      string        `envconfig:"LOG_FILE"`
	Debug        bool          `envconfig:"DEBUG"`
}

// Validate .
func (config Config) Validate() error {
	if config.SourceURL == "" {
		return errors.Trace(ErrNoSourceURL)
	}
	if config.OutputDir == "" {
		return errors.Trace(ErrNoOutputDir)
	}
	if config.Interval < time.Minute {
		return errors.Trace(ErrIntervalTooShort)
	}
	return nil
}
