package config

// Profile holds analysis settings for one named profile.
// Zero values mean "inherit": merging only overrides fields that are set.
type Profile struct {
	// StopWords replaces the built-in stop-word table when non-empty.
	StopWords []string `yaml:"stopWords,omitempty"`

	// ExtraStopWords extends the stop-word table (built-in or replaced)
	// with additional entries.
	ExtraStopWords []string `yaml:"extraStopWords,omitempty"`

	// TopWords overrides the most-common listing length.
	TopWords int `yaml:"topWords,omitempty"`

	// ChartWords overrides the number of bar-chart entries.
	ChartWords int `yaml:"chartWords,omitempty"`

	// ChartMarker overrides the bar-chart marker character.
	ChartMarker string `yaml:"chartMarker,omitempty"`
}

// File represents the structure of the .wordscan configuration file.
type File struct {
	// Defaults apply to every run unless overridden by a profile or a
	// CLI flag.
	Defaults Profile `yaml:"defaults,omitempty"`

	// Profiles maps profile names to their settings. A profile is
	// selected with the --profile flag.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// GetProfile returns the settings for the named profile merged over the
// defaults. An empty name returns the defaults unchanged. The boolean
// reports whether the named profile exists.
func (cf *File) GetProfile(name string) (Profile, bool) {
	if name == "" {
		return cf.Defaults, true
	}

	override, ok := cf.Profiles[name]
	if !ok {
		return cf.Defaults, false
	}

	result := cf.Defaults
	if len(override.StopWords) > 0 {
		result.StopWords = override.StopWords
	}
	if len(override.ExtraStopWords) > 0 {
		result.ExtraStopWords = append(result.ExtraStopWords, override.ExtraStopWords...)
	}
	if override.TopWords > 0 {
		result.TopWords = override.TopWords
	}
	if override.ChartWords > 0 {
		result.ChartWords = override.ChartWords
	}
	if override.ChartMarker != "" {
		result.ChartMarker = override.ChartMarker
	}
	return result, true
}

// ResolveStopWords computes the effective stop-word list for the profile
// on top of the given base table. A non-empty StopWords replaces the
// base; ExtraStopWords are appended afterwards.
func (p Profile) ResolveStopWords(base []string) []string {
	words := base
	if len(p.StopWords) > 0 {
		words = p.StopWords
	}

	if len(p.ExtraStopWords) == 0 {
		return words
	}

	merged := make([]string, 0, len(words)+len(p.ExtraStopWords))
	merged = append(merged, words...)
	merged = append(merged, p.ExtraStopWords...)
	return merged
}
