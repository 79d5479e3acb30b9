package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Prompt is the text shown before an interactive read.
const Prompt = "Enter a sentence of your choice: "

// Analyzer holds one input sentence and derives every analysis result
// from it. The zero input is valid and yields empty results.
type Analyzer struct {
	// raw is the current input, stored verbatim.
	raw string

	// input supplies lines for ReadInputInteractive.
	input *bufio.Reader

	// prompt receives the interactive prompt text.
	prompt io.Writer

	// lower performs Unicode-aware lowercasing.
	lower cases.Caser

	// stopWords are excluded from filtered views. Keys are already
	// trimmed and lowercased.
	stopWords map[string]struct{}
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithInput sets the reader used for interactive input.
// Defaults to standard input.
func WithInput(r io.Reader) Option {
	return func(a *Analyzer) {
		a.input = bufio.NewReader(r)
	}
}

// WithPrompt sets the writer that receives the interactive prompt.
// Defaults to standard output.
func WithPrompt(w io.Writer) Option {
	return func(a *Analyzer) {
		a.prompt = w
	}
}

// WithStopWords replaces the default stop-word table.
// Words are trimmed and lowercased so the set matches normalized tokens.
func WithStopWords(words []string) Option {
	return func(a *Analyzer) {
		a.stopWords = newStopWordSet(words)
	}
}

// newStopWordSet builds a lookup set from a word list.
func newStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// New creates an Analyzer with an empty input.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		input:     bufio.NewReader(os.Stdin),
		prompt:    os.Stdout,
		lower:     cases.Lower(language.Und),
		stopWords: newStopWordSet(defaultStopWords),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// SetInput stores s verbatim as the current input.
// Any string, including the empty string, is accepted.
func (a *Analyzer) SetInput(s string) {
	a.raw = s
}

// RawInput returns the current input exactly as it was set or read.
func (a *Analyzer) RawInput() string {
	return a.raw
}

// ReadInputInteractive writes the prompt, reads one line from the input
// reader, and stores it (without the trailing line terminator) as the
// current input. It returns ErrInputExhausted when the stream has no
// more data.
func (a *Analyzer) ReadInputInteractive() (string, error) {
	if _, err := io.WriteString(a.prompt, Prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := a.input.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final line without a terminator still counts as input.
			if line == "" {
				return "", ErrInputExhausted
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	a.raw = strings.TrimRight(line, "\r\n")
	return a.raw, nil
}

// Normalized returns the current input with surrounding whitespace
// removed and all characters lowercased. It is a pure function of the
// current input and is recomputed on every call.
func (a *Analyzer) Normalized() string {
	return a.lower.String(strings.TrimSpace(a.raw))
}

// tokens splits the normalized input on runs of whitespace.
// An empty input yields no tokens.
func (a *Analyzer) tokens() []string {
	return strings.Fields(a.Normalized())
}

// filteredTokens returns the tokens with stop words removed, preserving
// token-scan order.
func (a *Analyzer) filteredTokens() []string {
	all := a.tokens()
	kept := make([]string, 0, len(all))
	for _, w := range all {
		if _, blocked := a.stopWords[w]; blocked {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// IsStopWord reports whether the given word is in the stop-word set.
// The word is matched as-is; callers pass normalized tokens.
func (a *Analyzer) IsStopWord(word string) bool {
	_, ok := a.stopWords[word]
	return ok
}
