// Package config provides configuration structures and utilities for
// wordscan. It defines analysis and rendering options, validation,
// the YAML configuration-file loader, and XDG directory helpers.
package config
