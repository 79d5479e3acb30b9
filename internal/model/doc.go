// Package model defines the data structures shared across the analysis
// pipeline and the report writers. It contains the analysis report,
// ordered word/count entries, aggregate statistics, and word-length
// extremes.
package model
