package types

import "github.com/juju/errors"

var (
	// ErrNoSourceURL .
	ErrNoSourceURL = errors.New("source url must not be empty")
	// ErrNoOutputDir .
	ErrNoOutputDir = errors.New("output dir must not be empty")
	// ErrUpstreamStatus .
	ErrUpstreamStatus = errors.New("upstream returned non-ok status")
	// ErrEmptyDocument .
	ErrEmptyDocument = errors.New("upstream document contains no prefixes")
	// ErrIntervalTooShort .
	ErrIntervalTooShort = errors.New("refresh interval must be at least one minute")
)
