package config

import "errors"

// Configuration validation errors.
// These are package-level sentinel errors so callers can use errors.Is
// for programmatic handling while still getting readable messages.
var (
	// ErrInvalidTopWords is returned when the most-common listing
	// length is not positive.
	ErrInvalidTopWords = errors.New("invalid top words: must be positive")

	// ErrInvalidChartWords is returned when the bar-chart entry count
	// is not positive.
	ErrInvalidChartWords = errors.New("invalid chart words: must be positive")

	// ErrInvalidChartMarker is returned when the chart marker is not
	// exactly one character.
	ErrInvalidChartMarker = errors.New("invalid chart marker: must be a single character")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownProfile is returned when the requested profile does not
	// exist in the configuration file.
	ErrUnknownProfile = errors.New("unknown profile: not defined in configuration file")
)
