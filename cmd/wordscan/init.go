package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wordscan/wordscan/internal/config"
)

//go:embed templates/wordscan.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".wordscan"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new wordscan configuration file",
		Long: `Init creates a new .wordscan configuration file in the current directory.

The generated file includes:
- Commented examples for extending or replacing the stop-word table
- Report shape defaults (listing length, chart size and marker)
- An example named profile

Examples:
  # Create .wordscan in current directory
  wordscan init

  # Create config file at a specific path
  wordscan init -o myconfig.yaml

  # Create the global config in the XDG configuration directory
  wordscan init -g

  # Force overwrite existing file
  wordscan init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("global", "g", false,
		"Write the configuration to the XDG configuration directory")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	global, err := cmd.Flags().GetBool("global")
	if err != nil {
		return err
	}
	if global {
		if cmd.Flags().Changed("output") {
			return fmt.Errorf("cannot combine --global with --output")
		}
		outputPath = filepath.Join(config.XDGConfigDir(), "config.yaml")
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/wordscan.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Extra stop words or a replacement stop-word table")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Bar chart size and marker character")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Named profiles selectable with --profile")

	return nil
}
