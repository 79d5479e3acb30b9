package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wordscan/wordscan/internal/model"
)

// TextWriter outputs human-readable text reports.
// The format is line-oriented plain text designed for terminal display
// and easy piping to files or other tools.
type TextWriter struct {
	baseWriter

	// chartWords is the number of entries in the bar chart.
	chartWords int

	// chartMarker is the character repeated to draw chart bars.
	chartMarker string

	// filtered controls whether the bar chart draws the stop-word
	// filtered frequency (default) or the raw one.
	filtered bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithChartWords sets the number of bar-chart entries.
func WithChartWords(n int) TextWriterOption {
	return func(w *TextWriter) {
		w.chartWords = n
	}
}

// WithChartMarker sets the bar-chart marker character.
func WithChartMarker(marker string) TextWriterOption {
	return func(w *TextWriter) {
		w.chartMarker = marker
	}
}

// WithFilteredViews controls whether chart and listing views use the
// filtered frequency. Disabled by the --no-filter flag.
func WithFilteredViews(filtered bool) TextWriterOption {
	return func(w *TextWriter) {
		w.filtered = filtered
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter:  newBaseWriter(output),
		chartWords:  10,
		chartMarker: "#",
		filtered:    true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *TextWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeFrequency(&sb, report)
	if w.filtered {
		w.writeFilteredFrequency(&sb, report)
	}
	w.writeBarChart(&sb, report)
	w.writeStats(&sb, report)
	w.writeWordLengths(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with input information.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                          WORDSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Input:    %s\n", report.RawInput))
	sb.WriteString(fmt.Sprintf("Cleaned:  %s\n", report.NormalizedInput))
	sb.WriteString(fmt.Sprintf("Analyzed: %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n")
}

// writeFrequency writes the full descending frequency listing.
func (w *TextWriter) writeFrequency(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "WORD FREQUENCY")

	if len(report.Frequency) == 0 {
		sb.WriteString("  No words found\n\n")
		return
	}

	for _, entry := range report.Frequency {
		sb.WriteString(fmt.Sprintf("%-*s %d\n", WordFieldWidth, entry.Word, entry.Count))
	}
	sb.WriteString("\n")
}

// writeFilteredFrequency writes the stop-word filtered listing.
func (w *TextWriter) writeFilteredFrequency(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "FILTERED FREQUENCY")

	if len(report.Filtered) == 0 {
		sb.WriteString("  No words remain after stop-word filtering\n\n")
		return
	}

	for _, entry := range report.Filtered {
		sb.WriteString(fmt.Sprintf("%-*s %d\n", WordFieldWidth, entry.Word, entry.Count))
	}
	sb.WriteString("\n")
}

// writeBarChart writes the top-N bar chart, one marker per occurrence.
func (w *TextWriter) writeBarChart(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "BAR CHART")

	entries := report.Filtered
	if !w.filtered {
		entries = report.Frequency
	}
	if len(entries) == 0 {
		sb.WriteString("  Nothing to chart\n\n")
		return
	}

	n := w.chartWords
	if n > len(entries) {
		n = len(entries)
	}
	for _, entry := range entries[:n] {
		sb.WriteString(fmt.Sprintf("%-*s %s\n",
			ChartFieldWidth, entry.Word, strings.Repeat(w.chartMarker, entry.Count)))
	}
	sb.WriteString("\n")
}

// writeStats writes the aggregate statistics section.
func (w *TextWriter) writeStats(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "STATISTICS")

	sb.WriteString(fmt.Sprintf("  Total words:        %d\n", report.Stats.TotalWords))
	sb.WriteString(fmt.Sprintf("  Unique words:       %d\n", report.Stats.UniqueWords))
	sb.WriteString(fmt.Sprintf("  Stop words removed: %d\n", report.StopWordsRemoved))
	sb.WriteString("\n")
}

// writeWordLengths writes the longest/shortest word section.
func (w *TextWriter) writeWordLengths(sb *strings.Builder, report *model.AnalysisReport) {
	w.sectionHeader(sb, "WORD LENGTHS")

	if report.Extremes.Longest == nil || report.Extremes.Shortest == nil {
		sb.WriteString("  No words to measure\n\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  Longest:  %s\n", *report.Extremes.Longest))
	sb.WriteString(fmt.Sprintf("  Shortest: %s\n", *report.Extremes.Shortest))
	sb.WriteString("\n")
}

// sectionHeader writes a dashed section divider with a title.
func (w *TextWriter) sectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by wordscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
