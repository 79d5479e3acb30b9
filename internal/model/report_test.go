package model

import (
	"testing"
	"time"
)

// TestNewAnalysisReport tests report construction.
func TestNewAnalysisReport(t *testing.T) {
	t.Parallel()

	before := time.Now()
	report := NewAnalysisReport("Some Input")

	if report.RawInput != "Some Input" {
		t.Errorf("RawInput = %q, want verbatim input", report.RawInput)
	}
	if report.DateAnalyzed.Before(before) {
		t.Error("expected DateAnalyzed to be set to construction time")
	}
	if report.HasWords() || report.HasFilteredWords() {
		t.Error("expected a fresh report to have no words")
	}
}

// TestTopWords tests slicing of the filtered frequency.
func TestTopWords(t *testing.T) {
	t.Parallel()

	report := NewAnalysisReport("x")
	report.Filtered = []WordCount{
		{Word: "fox", Count: 3},
		{Word: "orange", Count: 2},
		{Word: "car", Count: 1},
	}

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "subset", n: 2, wantLen: 2},
		{name: "exact", n: 3, wantLen: 3},
		{name: "beyond vocabulary", n: 10, wantLen: 3},
		{name: "zero", n: 0, wantLen: 0},
		{name: "negative", n: -1, wantLen: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := report.TopWords(tt.n)
			if len(got) != tt.wantLen {
				t.Errorf("TopWords(%d) len = %d, want %d", tt.n, len(got), tt.wantLen)
			}
			for i, e := range got {
				if e != report.Filtered[i] {
					t.Errorf("TopWords(%d)[%d] = %+v, want prefix of Filtered", tt.n, i, e)
				}
			}
		})
	}
}

// TestHasWords tests the report predicates.
func TestHasWords(t *testing.T) {
	t.Parallel()

	report := NewAnalysisReport("the the")
	report.Stats = Stats{TotalWords: 2, UniqueWords: 1}
	if !report.HasWords() {
		t.Error("expected HasWords with non-zero total")
	}
	if report.HasFilteredWords() {
		t.Error("expected HasFilteredWords false with empty filtered list")
	}

	report.Filtered = []WordCount{{Word: "fox", Count: 1}}
	if !report.HasFilteredWords() {
		t.Error("expected HasFilteredWords with filtered entries")
	}
}
