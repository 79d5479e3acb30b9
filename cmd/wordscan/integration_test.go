package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestAnalyzeCompareWorkflow runs the full analyze-save-compare workflow
// the way a user would from the shell.
func TestAnalyzeCompareWorkflow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	before := filepath.Join(dir, "before.txt")
	after := filepath.Join(dir, "after.txt")

	if _, err := runCommand(t, "", "analyze", "--save="+before,
		"the fox jumps over the lazy dog"); err != nil {
		t.Fatalf("first analyze failed: %v", err)
	}

	if _, err := runCommand(t, "", "analyze", "--save="+after,
		"the fox jumps and the fox runs"); err != nil {
		t.Fatalf("second analyze failed: %v", err)
	}

	got, err := runCommand(t, "", "compare", before, after)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	// "fox" went from 1 to 2 occurrences, "runs" is new, and the words
	// from the first sentence only were dropped.
	for _, want := range []string{
		"+ runs",
		"- over",
		"- lazy",
		"- dog",
		"~ fox",
		"1 -> 2",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("compare output missing %q\noutput:\n%s", want, got)
		}
	}
}

// TestInitAnalyzeWorkflow creates a configuration file and analyzes with it.
func TestInitAnalyzeWorkflow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".wordscan")
	if _, err := runCommand(t, "", "init", "-o", path); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	got, err := runCommand(t, "", "analyze", "-c", path, "fox is in a orange car")
	if err != nil {
		t.Fatalf("analyze with generated config failed: %v", err)
	}
	if !strings.Contains(got, "WORDSCAN REPORT") {
		t.Errorf("output missing report header:\n%s", got)
	}
}
