// Package main provides the entry point for the wordscan CLI.
//
// Wordscan is a word-frequency analyzer for plain text sentences.
// It normalizes the input, counts word occurrences, filters common stop
// words, and renders text, Markdown, or JSON reports.
//
// Usage:
//
//	wordscan analyze "some sentence"
//	wordscan analyze
//
// See --help for all available options.
package main

// main is the entry point for wordscan.
func main() {
	Execute()
}
