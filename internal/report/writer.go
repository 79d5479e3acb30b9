package report

import (
	"io"

	"github.com/wordscan/wordscan/internal/model"
)

// Field widths for the line-oriented report formats.
const (
	// WordFieldWidth is the left-justified word column width in
	// frequency listings and the saved report file.
	WordFieldWidth = 15

	// ChartFieldWidth is the left-justified word column width in the
	// bar chart.
	ChartFieldWidth = 10
)

// Writer defines the interface for report output.
// Implementations render an analysis report in a specific format.
//
// Design decision: an interface allows different formats and
// destinations (stdout, files, buffers) behind one API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.AnalysisReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// Useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *model.AnalysisReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
