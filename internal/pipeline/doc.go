// Package pipeline orchestrates the analysis stages that populate an
// AnalysisReport: normalization, frequency counting, stop-word
// filtering, and word-length extremes. Steps run strictly in sequence;
// there is no concurrency in the analysis path.
package pipeline
