package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wordscan/wordscan/internal/model"
)

// ErrReportWrite is returned when the frequency report file cannot be
// created or written. The write is not retried; a failure mid-write
// leaves the file partially written, which is acceptable because each
// save fully truncates and rewrites it.
var ErrReportWrite = errors.New("cannot write report file")

// FrequencyWriter outputs the flat line-oriented frequency report:
// one `word<padding>count` line per word, ordered by descending count
// with first-occurrence tie-break. This is the format persisted by
// SaveFile and parsed back by LoadFile.
type FrequencyWriter struct {
	baseWriter

	// filtered selects the stop-word filtered entries (default) or the
	// raw frequency.
	filtered bool
}

// FrequencyWriterOption configures a FrequencyWriter.
type FrequencyWriterOption func(*FrequencyWriter)

// WithRawFrequency makes the writer output the unfiltered frequency.
func WithRawFrequency() FrequencyWriterOption {
	return func(w *FrequencyWriter) {
		w.filtered = false
	}
}

// NewFrequencyWriter creates a FrequencyWriter that outputs to the given
// writer.
func NewFrequencyWriter(output io.Writer, opts ...FrequencyWriterOption) *FrequencyWriter {
	w := &FrequencyWriter{
		baseWriter: newBaseWriter(output),
		filtered:   true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the frequency entries, one line per word.
func (w *FrequencyWriter) Write(report *model.AnalysisReport) (int, error) {
	entries := report.Filtered
	if !w.filtered {
		entries = report.Frequency
	}
	return w.output.Write([]byte(formatEntries(entries)))
}

// formatEntries renders entries in the flat report format.
func formatEntries(entries []model.WordCount) string {
	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "%-*s %d\n", WordFieldWidth, entry.Word, entry.Count)
	}
	return sb.String()
}

// SaveFile writes the entries to path in the flat report format,
// truncating any existing content. It returns an error wrapping
// ErrReportWrite when the path cannot be opened or written.
func SaveFile(path string, entries []model.WordCount) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return fmt.Errorf("%w: %s", ErrReportWrite, err)
	}

	if _, err := f.WriteString(formatEntries(entries)); err != nil {
		f.Close() //nolint:errcheck,gosec // Write error takes precedence
		return fmt.Errorf("%w: %s", ErrReportWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrReportWrite, err)
	}
	return nil
}

// LoadFile reads a saved flat report back into ordered entries.
// Blank lines are skipped; any other malformed line is an error.
func LoadFile(path string) ([]model.WordCount, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var entries []model.WordCount
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed report line %d: %q", lineNo, line)
		}

		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed count on line %d: %q", lineNo, line)
		}

		entries = append(entries, model.WordCount{Word: fields[0], Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	return entries, nil
}
