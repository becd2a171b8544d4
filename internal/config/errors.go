package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use errors.Is().
var (
	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when the delay between book requests is negative.
	// Use 0 for no delay.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrEmptyOutputDir is returned when no output directory is configured.
	ErrEmptyOutputDir = errors.New("output directory must not be empty")

	// ErrEmptyBaseURL is returned when no base URL is configured.
	ErrEmptyBaseURL = errors.New("base URL must not be empty")

	// ErrIncompleteSelectors is returned when a required selector is empty.
	ErrIncompleteSelectors = errors.New("selector table is incomplete")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
