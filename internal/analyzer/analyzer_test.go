package analyzer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestNormalized tests input normalization.
func TestNormalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and trims", input: "  Fox IS in a Orange car  ", want: "fox is in a orange car"},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: " \t\n ", want: ""},
		{name: "already normalized", input: "hello world", want: "hello world"},
		{name: "mixed unicode case", input: "Straße GROSS", want: "straße gross"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.SetInput(tt.input)
			if got := a.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNormalizedIdempotent verifies normalizing a normalized string is a
// no-op.
func TestNormalizedIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"  Fox IS in a Orange car  ", "", "Hello\tWORLD", "  \n  "}
	for _, input := range inputs {
		a := New()
		a.SetInput(input)
		once := a.Normalized()

		a.SetInput(once)
		if twice := a.Normalized(); twice != once {
			t.Errorf("normalization not idempotent: %q -> %q -> %q", input, once, twice)
		}
	}
}

// TestSetInput verifies the input is stored verbatim.
func TestSetInput(t *testing.T) {
	t.Parallel()

	a := New()
	a.SetInput("  RAW Input  ")
	if got := a.RawInput(); got != "  RAW Input  " {
		t.Errorf("RawInput() = %q, want verbatim input", got)
	}

	// Overwriting replaces the previous input entirely.
	a.SetInput("second")
	if got := a.RawInput(); got != "second" {
		t.Errorf("RawInput() = %q, want %q", got, "second")
	}
}

// TestReadInputInteractive tests the interactive input path.
func TestReadInputInteractive(t *testing.T) {
	t.Parallel()

	t.Run("reads one line and writes prompt", func(t *testing.T) {
		t.Parallel()

		var prompt bytes.Buffer
		a := New(
			WithInput(strings.NewReader("Fox IS in a Orange car\n")),
			WithPrompt(&prompt),
		)

		got, err := a.ReadInputInteractive()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Fox IS in a Orange car" {
			t.Errorf("ReadInputInteractive() = %q, want line without terminator", got)
		}
		if got != a.RawInput() {
			t.Error("expected returned line to be stored as raw input")
		}
		if prompt.String() != Prompt {
			t.Errorf("prompt = %q, want %q", prompt.String(), Prompt)
		}
	})

	t.Run("strips carriage return", func(t *testing.T) {
		t.Parallel()

		a := New(WithInput(strings.NewReader("hello\r\n")), WithPrompt(&bytes.Buffer{}))
		got, err := a.ReadInputInteractive()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello" {
			t.Errorf("ReadInputInteractive() = %q, want %q", got, "hello")
		}
	})

	t.Run("accepts final line without terminator", func(t *testing.T) {
		t.Parallel()

		a := New(WithInput(strings.NewReader("no newline")), WithPrompt(&bytes.Buffer{}))
		got, err := a.ReadInputInteractive()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "no newline" {
			t.Errorf("ReadInputInteractive() = %q, want %q", got, "no newline")
		}
	})

	t.Run("exhausted stream returns ErrInputExhausted", func(t *testing.T) {
		t.Parallel()

		a := New(WithInput(strings.NewReader("")), WithPrompt(&bytes.Buffer{}))
		if _, err := a.ReadInputInteractive(); !errors.Is(err, ErrInputExhausted) {
			t.Errorf("expected ErrInputExhausted, got %v", err)
		}
	})
}

// TestIsStopWord tests the stop-word set lookup.
func TestIsStopWord(t *testing.T) {
	t.Parallel()

	t.Run("default table", func(t *testing.T) {
		t.Parallel()

		a := New()
		for _, w := range DefaultStopWords() {
			if !a.IsStopWord(w) {
				t.Errorf("expected %q to be a stop word", w)
			}
		}
		if a.IsStopWord("fox") {
			t.Error("expected fox not to be a stop word")
		}
	})

	t.Run("custom table replaces default", func(t *testing.T) {
		t.Parallel()

		a := New(WithStopWords([]string{" FOX ", "car"}))
		if !a.IsStopWord("fox") {
			t.Error("expected custom stop words to be trimmed and lowercased")
		}
		if a.IsStopWord("the") {
			t.Error("expected default table to be replaced")
		}
	})
}

// TestDefaultStopWords verifies the returned list is a copy.
func TestDefaultStopWords(t *testing.T) {
	t.Parallel()

	words := DefaultStopWords()
	if len(words) != 10 {
		t.Fatalf("expected 10 default stop words, got %d", len(words))
	}

	words[0] = "mutated"
	if DefaultStopWords()[0] == "mutated" {
		t.Error("expected DefaultStopWords to return a copy")
	}
}
