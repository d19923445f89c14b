package server

import (
	"slices"

	"github.com/matkrin/colord/internal/token"
)

// Settings mirror the client's colord configuration section.
type Settings struct {
	MaxTokens    int          `json:"maxTokens"`
	Casing       token.Casing `json:"casing"`
	Languages    []string     `json:"languages"`
	CSSLanguages []string     `json:"cssLanguages"`
}

// DefaultSettings apply when the client does not support configuration
// pulls or has not answered one yet.
func DefaultSettings() Settings {
	return Settings{
		MaxTokens:    1000,
		Casing:       token.CasingUpper,
		Languages:    []string{"json", "jsonc", "cpp", "c++"},
		CSSLanguages: []string{"css", "less"},
	}
}

// IsCSSLanguage reports whether documents of languageID hold symbolic color
// references rather than literals.
func (s Settings) IsCSSLanguage(languageID string) bool {
	return slices.Contains(s.CSSLanguages, languageID)
}

// IsColorLanguage reports whether documents of languageID are scanned for
// literal color tokens. A language id listed in both configuration lists
// counts as a CSS language.
func (s Settings) IsColorLanguage(languageID string) bool {
	return slices.Contains(s.Languages, languageID) && !s.IsCSSLanguage(languageID)
}

// Classify maps a language id onto the detection engine's classification.
func (s Settings) Classify(languageID string) token.Class {
	switch {
	case s.IsCSSLanguage(languageID):
		return token.ClassReference
	case !slices.Contains(s.Languages, languageID):
		return token.ClassNone
	case languageID == "cpp" || languageID == "c++":
		return token.ClassCPP
	default:
		return token.ClassColor
	}
}

// SettingsCache memoizes the first resolved configuration for the life of
// the process. A configuration change made by the user after that is not
// observed (known limitation).
type SettingsCache struct {
	settings *Settings
}

// Get returns the cached settings, or the defaults while none are resolved.
func (c *SettingsCache) Get() Settings {
	if c.settings == nil {
		return DefaultSettings()
	}
	return *c.settings
}

// Resolve stores the first fetched settings value, filling unset fields
// from the defaults. Calls after the first are ignored.
func (c *SettingsCache) Resolve(s Settings) {
	if c.settings != nil {
		return
	}
	defaults := DefaultSettings()
	if s.MaxTokens <= 0 {
		s.MaxTokens = defaults.MaxTokens
	}
	if s.Casing != token.CasingLower {
		s.Casing = token.CasingUpper
	}
	if s.Languages == nil {
		s.Languages = defaults.Languages
	}
	if s.CSSLanguages == nil {
		s.CSSLanguages = defaults.CSSLanguages
	}
	c.settings = &s
}

// Invalidate drops the cached value so a later Resolve can take effect.
// Nothing calls it yet, the configuration is fetched exactly once.
func (c *SettingsCache) Invalidate() {
	c.settings = nil
}
