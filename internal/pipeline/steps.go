package pipeline

import (
	"context"

	"github.com/wordscan/wordscan/internal/analyzer"
	"github.com/wordscan/wordscan/internal/model"
)

// NormalizeStep records the normalized form of the input on the report.
// It runs first because every later step consumes normalized tokens.
type NormalizeStep struct {
	analyzer *analyzer.Analyzer
}

// NewNormalizeStep creates a normalization step bound to the analyzer.
func NewNormalizeStep(a *analyzer.Analyzer) *NormalizeStep {
	return &NormalizeStep{analyzer: a}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do stores the raw and normalized input on the report.
func (s *NormalizeStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.RawInput = s.analyzer.RawInput()
	report.NormalizedInput = s.analyzer.Normalized()
	return nil
}

// FrequencyStep computes the unfiltered word frequency and statistics.
type FrequencyStep struct {
	analyzer *analyzer.Analyzer
}

// NewFrequencyStep creates a frequency-counting step bound to the analyzer.
func NewFrequencyStep(a *analyzer.Analyzer) *FrequencyStep {
	return &FrequencyStep{analyzer: a}
}

// Name returns the step name.
func (s *FrequencyStep) Name() string {
	return "frequency"
}

// Do stores the descending-order frequency entries and token statistics.
func (s *FrequencyStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Frequency = s.analyzer.WordFrequency().Sorted()
	report.Stats = s.analyzer.Stats()
	return nil
}

// FilterStep computes the stop-word filtered frequency view.
type FilterStep struct {
	analyzer *analyzer.Analyzer
}

// NewFilterStep creates a stop-word filtering step bound to the analyzer.
func NewFilterStep(a *analyzer.Analyzer) *FilterStep {
	return &FilterStep{analyzer: a}
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter"
}

// Do stores the filtered frequency entries, filtered statistics, and the
// number of tokens removed by the filter.
func (s *FilterStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Filtered = s.analyzer.FilteredFrequency().Sorted()
	report.FilteredStats = s.analyzer.FilteredStats()
	report.StopWordsRemoved = s.analyzer.Stats().TotalWords - report.FilteredStats.TotalWords
	return nil
}

// ExtremesStep finds the longest and shortest filtered words.
type ExtremesStep struct {
	analyzer *analyzer.Analyzer
}

// NewExtremesStep creates a word-length step bound to the analyzer.
func NewExtremesStep(a *analyzer.Analyzer) *ExtremesStep {
	return &ExtremesStep{analyzer: a}
}

// Name returns the step name.
func (s *ExtremesStep) Name() string {
	return "extremes"
}

// Do stores the word-length extremes on the report.
func (s *ExtremesStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Extremes = s.analyzer.WordLengths()
	return nil
}

// DefaultPipeline creates a pipeline with the standard analysis steps in
// order: normalize, frequency, filter, extremes.
func DefaultPipeline(a *analyzer.Analyzer, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewNormalizeStep(a),
		NewFrequencyStep(a),
		NewFilterStep(a),
		NewExtremesStep(a),
	)
	return p
}
