package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/wordscan/wordscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: we use the nao1215/markdown library for fluent,
// type-safe markdown generation with tables, GFM alerts, and mermaid
// chart support.
type MarkdownWriter struct {
	baseWriter

	// topWords is the length of the most-common table and pie chart.
	topWords int
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithTopWords sets the length of the most-common table and pie chart.
func WithTopWords(n int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.topWords = n
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		topWords:   5,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeMostCommon(md, report)
	w.writeWordLengths(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with input information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("Wordscan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", "`" + report.RawInput + "`"},
			{"Normalized", "`" + report.NormalizedInput + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Total Words", strconv.Itoa(report.Stats.TotalWords)},
			{"Unique Words", strconv.Itoa(report.Stats.UniqueWords)},
			{"Stop Words Removed", strconv.Itoa(report.StopWordsRemoved)},
		},
	})
	md.PlainText("")

	switch {
	case !report.HasWords():
		md.Note("The input contained no words after normalization.")
	case !report.HasFilteredWords():
		md.Warning("Every word in the input is a stop word; the filtered report is empty.")
	default:
		md.Tipf("%d of %d words survived stop-word filtering.",
			report.FilteredStats.TotalWords, report.Stats.TotalWords)
	}
	md.PlainText("")
}

// writeMostCommon writes the most-common table and a pie chart of the
// filtered word distribution.
func (w *MarkdownWriter) writeMostCommon(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Most Common Words")
	md.PlainText("")

	top := report.TopWords(w.topWords)
	if len(top) == 0 {
		md.PlainText("No words to report.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(top))
	for i, entry := range top {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + entry.Word + "`",
			strconv.Itoa(entry.Count),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count"},
		Rows:   rows,
	})

	w.writePieChart(md, top)
}

// writePieChart writes a mermaid pie chart of the top filtered words.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, top []model.WordCount) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Word Distribution"),
		piechart.WithShowData(true),
	)

	for _, entry := range top {
		chart.LabelAndIntValue(entry.Word, uint64(entry.Count))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeWordLengths writes the longest/shortest word section.
func (w *MarkdownWriter) writeWordLengths(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Word Lengths")
	md.PlainText("")

	if report.Extremes.Longest == nil || report.Extremes.Shortest == nil {
		md.PlainText("No words to measure.")
		md.PlainText("")
		return
	}

	md.Table(markdown.TableSet{
		Header: []string{"Extreme", "Word", "Length"},
		Rows: [][]string{
			{"Longest", "`" + *report.Extremes.Longest + "`", strconv.Itoa(len(*report.Extremes.Longest))},
			{"Shortest", "`" + *report.Extremes.Shortest + "`", strconv.Itoa(len(*report.Extremes.Shortest))},
		},
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by wordscan*")
}
