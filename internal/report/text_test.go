package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wordscan/wordscan/internal/model"
)

// createTestReport creates a populated report for writer tests.
// It mirrors the analysis of "fox is in a orange car fox".
func createTestReport() *model.AnalysisReport {
	longest, shortest := "orange", "fox"
	report := model.NewAnalysisReport("Fox IS in a Orange car Fox")
	report.NormalizedInput = "fox is in a orange car fox"
	report.Frequency = []model.WordCount{
		{Word: "fox", Count: 2},
		{Word: "is", Count: 1},
		{Word: "in", Count: 1},
		{Word: "a", Count: 1},
		{Word: "orange", Count: 1},
		{Word: "car", Count: 1},
	}
	report.Filtered = []model.WordCount{
		{Word: "fox", Count: 2},
		{Word: "orange", Count: 1},
		{Word: "car", Count: 1},
	}
	report.Stats = model.Stats{TotalWords: 7, UniqueWords: 6}
	report.FilteredStats = model.Stats{TotalWords: 4, UniqueWords: 3}
	report.StopWordsRemoved = 3
	report.Extremes = model.Extremes{Longest: &longest, Shortest: &shortest}
	return report
}

// TestTextWriter tests the human-readable report writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and input", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORDSCAN REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "Cleaned:  fox is in a orange car fox") {
			t.Error("expected output to contain normalized input")
		}
	})

	t.Run("writes frequency listing with padded words", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WORD FREQUENCY") {
			t.Error("expected frequency section")
		}
		// 15-character left-justified word field, then the count.
		if !strings.Contains(output, "fox             2") {
			t.Error("expected padded frequency line for fox")
		}
	})

	t.Run("writes bar chart with one marker per occurrence", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "BAR CHART") {
			t.Error("expected bar chart section")
		}
		// 10-character word field, two markers for two occurrences.
		if !strings.Contains(output, "fox        ##") {
			t.Error("expected bar line for fox")
		}
	})

	t.Run("custom marker", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, WithChartMarker("*"))

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "fox        **") {
			t.Error("expected custom marker in bar chart")
		}
	})

	t.Run("chart limit caps entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, WithChartWords(1))

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "orange     #") {
			t.Error("expected chart to stop after the first entry")
		}
	})

	t.Run("unfiltered views chart raw frequency", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, WithFilteredViews(false))

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "FILTERED FREQUENCY") {
			t.Error("expected filtered section to be skipped")
		}
		if !strings.Contains(output, "is         #") {
			t.Error("expected stop word in unfiltered bar chart")
		}
	})

	t.Run("writes statistics and word lengths", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Total words:        7") {
			t.Error("expected total word count")
		}
		if !strings.Contains(output, "Unique words:       6") {
			t.Error("expected unique word count")
		}
		if !strings.Contains(output, "Longest:  orange") {
			t.Error("expected longest word")
		}
		if !strings.Contains(output, "Shortest: fox") {
			t.Error("expected shortest word")
		}
	})

	t.Run("empty report shows placeholders", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf)

		if _, err := w.Write(model.NewAnalysisReport("")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No words found") {
			t.Error("expected empty frequency placeholder")
		}
		if !strings.Contains(output, "Nothing to chart") {
			t.Error("expected empty chart placeholder")
		}
		if !strings.Contains(output, "No words to measure") {
			t.Error("expected empty word lengths placeholder")
		}
	})
}

// TestMultiWriter tests writing to several destinations at once.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, flat bytes.Buffer
	mw := NewMultiWriter(NewTextWriter(&text), NewFrequencyWriter(&flat))

	n, err := mw.Write(createTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != text.Len()+flat.Len() {
		t.Errorf("total bytes = %d, want %d", n, text.Len()+flat.Len())
	}
	if text.Len() == 0 || flat.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}
