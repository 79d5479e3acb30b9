package analyzer

import "slices"

// defaultStopWords is the built-in stop-word table. It is never mutated;
// per-analyzer overrides are copied into their own set at construction.
var defaultStopWords = []string{
	"the", "and", "of", "to", "a", "in", "is", "it", "you", "that",
}

// DefaultStopWords returns a copy of the built-in stop-word list.
func DefaultStopWords() []string {
	return slices.Clone(defaultStopWords)
}
