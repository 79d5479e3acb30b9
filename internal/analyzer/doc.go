// Package analyzer implements word-frequency analysis over a single
// input sentence. It holds the raw input, normalizes it (trim plus
// Unicode lowercasing), tokenizes on whitespace runs, counts word
// occurrences in insertion order, and derives statistics, stop-word
// filtered views, and word-length extremes.
//
// The analyzer is deliberately single-threaded: every derived value is
// recomputed from the current raw input on demand, so there is no cached
// state that could drift.
package analyzer
