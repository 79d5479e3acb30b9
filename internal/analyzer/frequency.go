package analyzer

import (
	"slices"

	"github.com/wordscan/wordscan/internal/model"
)

// Frequency is an insertion-ordered word counter.
//
// Design decision: a plain map[string]int loses the order in which words
// first appeared, but the most-common and longest/shortest operations
// break ties by first occurrence. We therefore keep entries in a slice
// (insertion order) with a map from word to slice index for counting.
type Frequency struct {
	entries []model.WordCount
	index   map[string]int
}

// NewFrequency creates an empty counter.
func NewFrequency() *Frequency {
	return &Frequency{index: make(map[string]int)}
}

// Add records one occurrence of word.
func (f *Frequency) Add(word string) {
	if i, ok := f.index[word]; ok {
		f.entries[i].Count++
		return
	}
	f.index[word] = len(f.entries)
	f.entries = append(f.entries, model.WordCount{Word: word, Count: 1})
}

// Len returns the number of distinct words.
func (f *Frequency) Len() int {
	return len(f.entries)
}

// Count returns the occurrence count for word, or zero if absent.
func (f *Frequency) Count(word string) int {
	if i, ok := f.index[word]; ok {
		return f.entries[i].Count
	}
	return 0
}

// Entries returns a copy of all entries in first-occurrence order.
func (f *Frequency) Entries() []model.WordCount {
	return slices.Clone(f.entries)
}

// Sorted returns all entries ordered by descending count.
// The sort is stable, so equal counts keep first-occurrence order.
func (f *Frequency) Sorted() []model.WordCount {
	sorted := slices.Clone(f.entries)
	slices.SortStableFunc(sorted, func(a, b model.WordCount) int {
		return b.Count - a.Count
	})
	return sorted
}

// MostCommon returns up to n entries ordered by descending count with
// first-occurrence tie-break. If n exceeds the vocabulary size all
// entries are returned; n <= 0 returns an empty slice.
func (f *Frequency) MostCommon(n int) []model.WordCount {
	if n <= 0 {
		return []model.WordCount{}
	}
	sorted := f.Sorted()
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// WordFrequency tokenizes the normalized input and counts each distinct
// token. The sum of all counts equals the number of tokens.
func (a *Analyzer) WordFrequency() *Frequency {
	f := NewFrequency()
	for _, w := range a.tokens() {
		f.Add(w)
	}
	return f
}

// FilteredFrequency is WordFrequency with stop words removed before
// counting.
func (a *Analyzer) FilteredFrequency() *Frequency {
	f := NewFrequency()
	for _, w := range a.filteredTokens() {
		f.Add(w)
	}
	return f
}

// MostCommon returns the top n word/count pairs of the unfiltered
// frequency. See Frequency.MostCommon for the ordering contract.
func (a *Analyzer) MostCommon(n int) []model.WordCount {
	return a.WordFrequency().MostCommon(n)
}

// Stats returns total and unique token counts over the unfiltered input.
func (a *Analyzer) Stats() model.Stats {
	f := a.WordFrequency()
	total := 0
	for _, e := range f.Entries() {
		total += e.Count
	}
	return model.Stats{TotalWords: total, UniqueWords: f.Len()}
}

// FilteredStats returns total and unique token counts after stop-word
// removal.
func (a *Analyzer) FilteredStats() model.Stats {
	f := a.FilteredFrequency()
	total := 0
	for _, e := range f.Entries() {
		total += e.Count
	}
	return model.Stats{TotalWords: total, UniqueWords: f.Len()}
}

// WordLengths returns the longest and shortest words of the filtered
// token list. When several words share the extreme length, the first one
// in token-scan order wins. Both fields are nil when the filtered token
// list is empty.
func (a *Analyzer) WordLengths() model.Extremes {
	words := a.filteredTokens()
	if len(words) == 0 {
		return model.Extremes{}
	}

	longest, shortest := words[0], words[0]
	for _, w := range words[1:] {
		if len(w) > len(longest) {
			longest = w
		}
		if len(w) < len(shortest) {
			shortest = w
		}
	}
	return model.Extremes{Longest: &longest, Shortest: &shortest}
}
