// Package main provides the entry point for the wordscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wordscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordscan",
		Short: "Word-frequency analyzer for plain text sentences",
		Long: `Wordscan analyzes a sentence and reports word frequencies.

It normalizes the input (trim and lowercase), tokenizes on whitespace,
counts word occurrences, filters common English stop words, and renders
frequency tables, a text bar chart, and longest/shortest word lookups.
Reports can be printed as plain text, Markdown, or JSON, and the flat
word/count listing can be saved to a file for later comparison.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
