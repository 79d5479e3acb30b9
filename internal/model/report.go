package model

import "time"

// WordCount is a single word paired with its occurrence count.
// Slices of WordCount carry an explicit order, unlike a map, so the
// descending-frequency presentation order survives serialization.
type WordCount struct {
	// Word is the normalized token.
	Word string `json:"word"`

	// Count is the number of occurrences. Always positive; words that
	// never occur are simply absent.
	Count int `json:"count"`
}

// Stats holds aggregate counts over one tokenized input.
type Stats struct {
	// TotalWords is the number of tokens, duplicates included.
	TotalWords int `json:"total_words"`

	// UniqueWords is the number of distinct tokens.
	UniqueWords int `json:"unique_words"`
}

// Extremes holds the longest and shortest words of the filtered
// vocabulary. Both fields are nil when the filtered vocabulary is empty.
// Ties are broken by first occurrence in token-scan order.
type Extremes struct {
	Longest  *string `json:"longest"`
	Shortest *string `json:"shortest"`
}

// AnalysisReport is the main analysis result structure.
// It is created empty by NewAnalysisReport and populated step by step
// as the pipeline runs.
//
// Design decision: we use a single flat struct rather than one struct
// per pipeline stage to simplify serialization. The JSON form of this
// struct is exactly what the --json report prints.
type AnalysisReport struct {
	// RawInput is the input sentence exactly as provided.
	RawInput string `json:"raw_input"`

	// NormalizedInput is the trimmed, lowercased form of RawInput.
	NormalizedInput string `json:"normalized_input"`

	// DateAnalyzed is the timestamp when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Frequency contains every word with its count, ordered by
	// descending count with first-occurrence tie-break.
	Frequency []WordCount `json:"frequency,omitempty"`

	// Filtered is Frequency with stop words removed before counting,
	// in the same order.
	Filtered []WordCount `json:"filtered_frequency,omitempty"`

	// Stats are the aggregate counts over the unfiltered token list.
	Stats Stats `json:"stats"`

	// FilteredStats are the aggregate counts after stop-word removal.
	FilteredStats Stats `json:"filtered_stats"`

	// StopWordsRemoved is the number of tokens dropped by the filter,
	// duplicates included.
	StopWordsRemoved int `json:"stop_words_removed"`

	// Extremes are the longest and shortest filtered words.
	Extremes Extremes `json:"word_lengths"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the first step error when the pipeline is configured
	// to continue on error. Excluded from JSON; ErrorMessage carries
	// the serializable form.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error, if any.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAnalysisReport creates an empty report for the given raw input.
func NewAnalysisReport(raw string) *AnalysisReport {
	return &AnalysisReport{
		RawInput:     raw,
		DateAnalyzed: time.Now(),
	}
}

// TopWords returns up to n entries from the filtered frequency list.
// If n exceeds the filtered vocabulary, all entries are returned.
// n <= 0 returns nil.
func (r *AnalysisReport) TopWords(n int) []WordCount {
	if n <= 0 || len(r.Filtered) == 0 {
		return nil
	}
	if n > len(r.Filtered) {
		n = len(r.Filtered)
	}
	return r.Filtered[:n]
}

// HasWords reports whether any tokens survived normalization.
func (r *AnalysisReport) HasWords() bool {
	return r.Stats.TotalWords > 0
}

// HasFilteredWords reports whether any tokens survived stop-word removal.
func (r *AnalysisReport) HasFilteredWords() bool {
	return len(r.Filtered) > 0
}
