package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wordscan/wordscan/internal/analyzer"
	"github.com/wordscan/wordscan/internal/config"
	"github.com/wordscan/wordscan/internal/model"
	"github.com/wordscan/wordscan/internal/pipeline"
	"github.com/wordscan/wordscan/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze a sentence and report word frequencies",
		Long: `Analyze normalizes a sentence, counts word occurrences, filters common
stop words, and renders a report with:
- A full descending word-frequency listing
- The stop-word filtered frequency
- A text bar chart of the most frequent words
- Total/unique word statistics and longest/shortest word lookup

The sentence is taken from the positional arguments. With no arguments,
wordscan prompts for one line on standard input.

Examples:
  # Analyze a sentence passed as arguments
  wordscan analyze "The quick brown fox jumps over the lazy dog"

  # Prompt for a sentence interactively
  wordscan analyze

  # Output a Markdown report with the top 3 words
  wordscan analyze -m -n 3 "to be or not to be"

  # Render the report to a file and save the flat frequency listing
  wordscan analyze -o report.md -m --save=counts.txt "some text"

  # Save the flat frequency listing to the default report.txt
  wordscan analyze --save "some text"

  # Use a named profile from the configuration file
  wordscan analyze --profile prose "some text"

Configuration file (.wordscan) example:
  defaults:
    extraStopWords: ["was", "were"]
    chartWords: 15
  profiles:
    prose:
      extraStopWords: ["he", "she", "they"]`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Report shape flags
	cmd.Flags().IntP("top", "n", config.DefaultTopWords,
		"Number of entries in the most-common listing (Markdown report)")
	cmd.Flags().Int("chart-words", config.DefaultChartWords,
		"Number of bars in the text bar chart")
	cmd.Flags().String("marker", config.DefaultChartMarker,
		"Single character used to draw chart bars")
	cmd.Flags().Bool("no-filter", false,
		"Chart and save the raw frequency instead of the stop-word filtered one")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wordscan in current or home directory)")
	cmd.Flags().StringP("profile", "p", "",
		"Named profile from the configuration file")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the rendered report to the specified file path")
	cmd.Flags().StringP("save", "s", "",
		"Save the flat word/count frequency report to the specified path")
	cmd.Flag("save").NoOptDefVal = config.DefaultSaveFile

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	return runAnalysis(cmd.Context(), cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and cobra
// flags. File values override defaults; explicitly set flags override
// the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.Sentence = strings.Join(args, " ")
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Profile, err = cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	// Load profiles from the configuration file.
	// If the user explicitly specified a path, a missing file is an error.
	// If no path was specified, a missing file silently means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	switch {
	case configPath != "":
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := applyProfile(cfg, cf); err != nil {
			return nil, err
		}
	case explicitConfigPath:
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	case cfg.Profile != "":
		// A profile was requested but there is no config file to define it.
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProfile, cfg.Profile)
	}

	if cfg.StopWords == nil {
		cfg.StopWords = analyzer.DefaultStopWords()
	}

	// Explicitly set flags win over configuration file values.
	if cmd.Flags().Changed("top") {
		if cfg.TopWords, err = cmd.Flags().GetInt("top"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("chart-words") {
		if cfg.ChartWords, err = cmd.Flags().GetInt("chart-words"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("marker") {
		if cfg.ChartMarker, err = cmd.Flags().GetString("marker"); err != nil {
			return nil, err
		}
	}

	noFilter, err := cmd.Flags().GetBool("no-filter")
	if err != nil {
		return nil, err
	}
	cfg.FilterViews = !noFilter

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.SaveFile, err = cmd.Flags().GetString("save")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyProfile copies the selected profile's settings into the config.
func applyProfile(cfg *config.Config, cf *config.File) error {
	profile, ok := cf.GetProfile(cfg.Profile)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownProfile, cfg.Profile)
	}

	if profile.TopWords > 0 {
		cfg.TopWords = profile.TopWords
	}
	if profile.ChartWords > 0 {
		cfg.ChartWords = profile.ChartWords
	}
	if profile.ChartMarker != "" {
		cfg.ChartMarker = profile.ChartMarker
	}
	cfg.StopWords = profile.ResolveStopWords(analyzer.DefaultStopWords())

	return nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runAnalysis executes the analysis pipeline and renders the report.
func runAnalysis(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	a := analyzer.New(
		analyzer.WithInput(in),
		analyzer.WithPrompt(out),
		analyzer.WithStopWords(cfg.StopWords),
	)

	if cfg.Sentence != "" {
		a.SetInput(cfg.Sentence)
	} else {
		if _, err := a.ReadInputInteractive(); err != nil {
			return fmt.Errorf("failed to read sentence: %w", err)
		}
		fmt.Fprintln(out)
	}

	logger.Info("starting analysis",
		"interactive", cfg.Sentence == "",
		"stopWords", len(cfg.StopWords),
	)

	analysisReport := model.NewAnalysisReport(a.RawInput())

	p := pipeline.DefaultPipeline(a, pipeline.WithLogger(logger))
	if err := p.Execute(ctx, analysisReport); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := outputReport(cfg, analysisReport, out); err != nil {
		return err
	}

	if cfg.SaveFile != "" {
		if err := saveFrequencyReport(cfg, analysisReport, out, logger); err != nil {
			return err
		}
	}

	return nil
}

// outputReport renders the analysis report in the requested format.
func outputReport(cfg *config.Config, analysisReport *model.AnalysisReport, stdout io.Writer) error {
	// Determine output destination
	output := stdout
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Best effort close on the success path
		output = f
	}

	// JSON output
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(analysisReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output, report.WithTopWords(cfg.TopWords))
		_, err := writer.Write(analysisReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewTextWriter(output,
		report.WithChartWords(cfg.ChartWords),
		report.WithChartMarker(cfg.ChartMarker),
		report.WithFilteredViews(cfg.FilterViews),
	)
	_, err := writer.Write(analysisReport)
	return err
}

// saveFrequencyReport persists the flat word/count listing.
func saveFrequencyReport(cfg *config.Config, analysisReport *model.AnalysisReport, out io.Writer, logger *slog.Logger) error {
	entries := analysisReport.Filtered
	if !cfg.FilterViews {
		entries = analysisReport.Frequency
	}

	if err := report.SaveFile(cfg.SaveFile, entries); err != nil {
		return err
	}

	logger.Info("frequency report saved", "path", cfg.SaveFile, "words", len(entries))
	fmt.Fprintf(out, "Report saved to %q\n", cfg.SaveFile)
	return nil
}
