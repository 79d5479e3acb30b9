package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile tests YAML configuration loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads defaults and profiles", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".wordscan")
		content := `defaults:
  extraStopWords: ["was", "were"]
  chartWords: 15
profiles:
  prose:
    extraStopWords: ["he", "she"]
    chartMarker: "*"
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.Defaults.ChartWords != 15 {
			t.Errorf("Defaults.ChartWords = %d, want 15", cf.Defaults.ChartWords)
		}
		if len(cf.Defaults.ExtraStopWords) != 2 {
			t.Errorf("Defaults.ExtraStopWords = %v, want two entries", cf.Defaults.ExtraStopWords)
		}
		if _, ok := cf.Profiles["prose"]; !ok {
			t.Error("expected prose profile to be loaded")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".wordscan")
		if err := os.WriteFile(path, []byte("defaults: [not a map"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})

	t.Run("empty file yields usable zero config", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".wordscan")
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Profiles == nil {
			t.Error("expected Profiles map to be initialized")
		}
	})
}

// TestFindConfigFile tests the configuration search order.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("defaults: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q, want same path", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if got := FindConfigFile(missing); got != "" {
			t.Errorf("FindConfigFile(%q) = %q, want empty", missing, got)
		}
	})
}
