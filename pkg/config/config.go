// Package config defines the sufftree CLI configuration and its YAML form.
package config

import (
	"fmt"
	"unicode/utf8"
)

// OutputFormat selects how a built tree is rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatPretty OutputFormat = "pretty"
	FormatText   OutputFormat = "text"
	FormatDOT    OutputFormat = "dot"
	FormatStats  OutputFormat = "stats"
)

// Config holds the CLI settings. Zero values mean "unset"; Default fills in
// the effective defaults and file/env/flag layers override from there.
type Config struct {
	// Terminator is the symbol appended to the input; must be a single
	// rune that does not occur in the input.
	Terminator string `yaml:"terminator"`

	// Format selects the output rendering.
	Format OutputFormat `yaml:"format"`

	// Color controls styled output: auto, always, never.
	Color string `yaml:"color"`

	// Lowercase restricts input to the letters a-z (teaching variant).
	// Pointer so an explicit false in a config file overrides a true
	// from a lower-precedence layer; nil means "unset".
	Lowercase *bool `yaml:"lowercase"`

	// SuffixLinks includes suffix-link edges in DOT output.
	SuffixLinks *bool `yaml:"suffix_links"`

	// SuffixStarts annotates leaves with their suffix start index.
	SuffixStarts *bool `yaml:"suffix_starts"`
}

// Default returns the effective defaults.
func Default() *Config {
	return &Config{
		Terminator:   "$",
		Format:       FormatPretty,
		Color:        "auto",
		Lowercase:    boolPtr(false),
		SuffixLinks:  boolPtr(false),
		SuffixStarts: boolPtr(true),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// LowercaseEnabled reports the effective lowercase setting; unset means off.
func (c *Config) LowercaseEnabled() bool {
	return c.Lowercase != nil && *c.Lowercase
}

// SuffixLinksEnabled reports the effective suffix-link setting; unset means
// off.
func (c *Config) SuffixLinksEnabled() bool {
	return c.SuffixLinks != nil && *c.SuffixLinks
}

// SuffixStartsEnabled reports the effective suffix-start setting; unset
// means on.
func (c *Config) SuffixStartsEnabled() bool {
	return c.SuffixStarts == nil || *c.SuffixStarts
}

// Validate checks the configuration for values no command can act on.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Terminator) != 1 {
		return fmt.Errorf("terminator must be a single symbol, got %q", c.Terminator)
	}

	switch c.Format {
	case FormatPretty, FormatText, FormatDOT, FormatStats:
	default:
		return fmt.Errorf("unknown format %q (want pretty, text, dot or stats)", c.Format)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

// TerminatorRune returns the terminator as a rune. Call Validate first.
func (c *Config) TerminatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Terminator)
	return r
}

// Merge overlays set fields of other onto c and returns c. Strings merge
// when non-empty, toggles when non-nil, so an explicit false in a higher
// layer beats a true default.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Terminator != "" {
		c.Terminator = other.Terminator
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.Lowercase != nil {
		c.Lowercase = other.Lowercase
	}
	if other.SuffixLinks != nil {
		c.SuffixLinks = other.SuffixLinks
	}
	if other.SuffixStarts != nil {
		c.SuffixStarts = other.SuffixStarts
	}
	return c
}
