package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wordscan"

// xdgConfigFileName is the configuration file name inside the XDG
// configuration directory, where hidden-file naming is not customary.
const xdgConfigFileName = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers decide whether that is fatal based on whether the path
// was explicitly specified by the user.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads profiles from a YAML configuration file.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Profiles == nil {
		cf.Profiles = make(map[string]Profile)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following
// order:
//  1. If configPath is specified, use it directly
//  2. .wordscan in the current directory
//  3. config.yaml in the XDG configuration directory
//  4. .wordscan in the user's home directory
//
// Returns the path if found, or an empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), xdgConfigFileName)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
