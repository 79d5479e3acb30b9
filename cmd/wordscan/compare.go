package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wordscan/wordscan/internal/model"
	"github.com/wordscan/wordscan/internal/report"
)

// NewCompareCmd creates the compare command.
// It diffs two flat frequency report files saved with `analyze --save`.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <old-report> <new-report>",
		Short: "Compare two saved frequency reports",
		Long: `Compare displays differences between two saved frequency reports.

Both arguments are flat word/count report files produced by
'wordscan analyze --save'. The output shows:
- New words that appear only in the newer report
- Dropped words that appear only in the older report
- Words whose counts changed

Examples:
  # Compare two saved reports
  wordscan compare before.txt after.txt`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	return cmd
}

// countChange records a word whose count differs between two reports.
type countChange struct {
	word     string
	oldCount int
	newCount int
}

// frequencyDiff holds the differences between two saved reports.
type frequencyDiff struct {
	// added are words present only in the newer report, in its order.
	added []model.WordCount

	// removed are words present only in the older report, in its order.
	removed []model.WordCount

	// changed are words present in both with different counts, in the
	// newer report's order.
	changed []countChange
}

// empty reports whether the two reports are identical.
func (d *frequencyDiff) empty() bool {
	return len(d.added) == 0 && len(d.removed) == 0 && len(d.changed) == 0
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	oldEntries, err := report.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load old report %s: %w", args[0], err)
	}

	newEntries, err := report.LoadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to load new report %s: %w", args[1], err)
	}

	diff := diffEntries(oldEntries, newEntries)
	writeDiff(cmd.OutOrStdout(), args[0], args[1], diff)
	return nil
}

// diffEntries computes the word-level differences between two reports.
func diffEntries(oldEntries, newEntries []model.WordCount) *frequencyDiff {
	oldCounts := make(map[string]int, len(oldEntries))
	for _, e := range oldEntries {
		oldCounts[e.Word] = e.Count
	}
	newCounts := make(map[string]int, len(newEntries))
	for _, e := range newEntries {
		newCounts[e.Word] = e.Count
	}

	diff := &frequencyDiff{}
	for _, e := range newEntries {
		oldCount, ok := oldCounts[e.Word]
		switch {
		case !ok:
			diff.added = append(diff.added, e)
		case oldCount != e.Count:
			diff.changed = append(diff.changed, countChange{
				word:     e.Word,
				oldCount: oldCount,
				newCount: e.Count,
			})
		}
	}
	for _, e := range oldEntries {
		if _, ok := newCounts[e.Word]; !ok {
			diff.removed = append(diff.removed, e)
		}
	}

	return diff
}

// writeDiff prints the comparison result in human-readable form.
func writeDiff(out io.Writer, oldPath, newPath string, diff *frequencyDiff) {
	fmt.Fprintf(out, "Comparing %s -> %s\n\n", oldPath, newPath)

	if diff.empty() {
		fmt.Fprintln(out, "No differences found.")
		return
	}

	if len(diff.added) > 0 {
		fmt.Fprintln(out, "New words:")
		for _, e := range diff.added {
			fmt.Fprintf(out, "  + %-*s %d\n", report.WordFieldWidth, e.Word, e.Count)
		}
		fmt.Fprintln(out)
	}

	if len(diff.removed) > 0 {
		fmt.Fprintln(out, "Dropped words:")
		for _, e := range diff.removed {
			fmt.Fprintf(out, "  - %-*s %d\n", report.WordFieldWidth, e.Word, e.Count)
		}
		fmt.Fprintln(out)
	}

	if len(diff.changed) > 0 {
		fmt.Fprintln(out, "Changed counts:")
		for _, c := range diff.changed {
			fmt.Fprintf(out, "  ~ %-*s %d -> %d\n", report.WordFieldWidth, c.word, c.oldCount, c.newCount)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d new, %d dropped, %d changed\n",
		len(diff.added), len(diff.removed), len(diff.changed))
}
