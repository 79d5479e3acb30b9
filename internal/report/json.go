package report

import (
	"encoding/json"
	"io"

	"github.com/wordscan/wordscan/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic
// processing. The standard encoding/json package is sufficient here;
// the report struct carries its own JSON tags.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed output.
	indent bool

	// indentPrefix is prepended to each line in indented output.
	indentPrefix string

	// indentString is the per-level indentation string.
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output with the given prefix
// and per-level indent.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// Convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(report *model.AnalysisReport) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(report, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output.
	data = append(data, '\n')

	return w.output.Write(data)
}
