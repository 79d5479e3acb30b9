package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values. These mirror the tool's report defaults:
// a short most-common listing, a ten-entry bar chart, and a flat report
// file in the working directory.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "wordscan"

	// DefaultTopWords is the number of entries in the most-common
	// listing shown by the Markdown report.
	DefaultTopWords = 5

	// DefaultChartWords is the number of entries in the bar chart.
	DefaultChartWords = 10

	// DefaultChartMarker is the character repeated to draw chart bars.
	DefaultChartMarker = "#"

	// DefaultSaveFile is the flat frequency-report file name used when
	// saving is requested without an explicit path.
	DefaultSaveFile = "report.txt"
)

// Config holds all options for one analysis run.
// It is populated from the configuration file and CLI flags, then passed
// through the application explicitly rather than via global state.
type Config struct {
	// Sentence is the input text. When empty, the tool prompts for a
	// sentence on standard input.
	Sentence string

	// TopWords is the length of the most-common listing.
	TopWords int

	// ChartWords is the number of bars in the bar chart.
	ChartWords int

	// ChartMarker is the character repeated to draw chart bars.
	// Must be a single character.
	ChartMarker string

	// FilterViews controls whether the bar chart and the saved report
	// use the stop-word filtered frequency (default) or the raw one.
	FilterViews bool

	// StopWords is the effective stop-word list after applying the
	// configuration file. Empty means the built-in table.
	StopWords []string

	// JSONReport renders the report as JSON instead of plain text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport renders the report as Markdown instead of plain
	// text. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, receives the rendered report instead of
	// standard output.
	ReportFile string

	// SaveFile, when set, receives the flat word/count frequency
	// report. The file is truncated and fully rewritten on each save.
	SaveFile string

	// ConfigFilePath is the configuration file path. When empty, the
	// tool searches the standard locations (see FindConfigFile).
	ConfigFilePath string

	// Profile selects a named profile from the configuration file.
	Profile string

	// Verbose enables slog.LevelDebug output. When false, only
	// warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a Config with default values.
// Defaults that are non-zero live here rather than in flag definitions
// so library callers get the same behavior as the CLI.
func NewConfig() *Config {
	return &Config{
		TopWords:    DefaultTopWords,
		ChartWords:  DefaultChartWords,
		ChartMarker: DefaultChartMarker,
		FilterViews: true,
	}
}

// XDGConfigDir returns the XDG configuration directory for wordscan.
// On Linux: ~/.config/wordscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
// It is called once after flag parsing, before any analysis begins.
func (c *Config) Validate() error {
	if c.TopWords <= 0 {
		return ErrInvalidTopWords
	}

	if c.ChartWords <= 0 {
		return ErrInvalidChartWords
	}

	// One marker character keeps bar lengths equal to counts.
	if len([]rune(c.ChartMarker)) != 1 {
		return ErrInvalidChartMarker
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
