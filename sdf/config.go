package sdf

import (
	"errors"
	"fmt"
)

// ErrNilTypesetter is returned when a Synthesizer is created without a
// typesetter.
var ErrNilTypesetter = errors.New("sdf: nil typesetter")

// Config holds synthesizer configuration.
type Config struct {
	// FontSize is the em size in pixels at which segments are drawn.
	// Default: 24
	FontSize int

	// Margin is the blank border around the drawn glyph in pixels. The
	// working surface is FontSize + 8*Margin on each axis, which leaves
	// room for the field to decay and for marks that overshoot the em
	// box. Default: 3
	Margin int

	// Radius is the distance in pixels over which the field decays to
	// zero. Default: 8
	Radius float64

	// Cutoff shifts the encoded zero crossing: the shape boundary is
	// written as round(255 * (1 - Cutoff)), leaving headroom below it
	// for halo rendering. Default: 0.25
	Cutoff float64
}

// DefaultConfig returns the default synthesizer configuration.
func DefaultConfig() Config {
	return Config{
		FontSize: 24,
		Margin:   3,
		Radius:   8,
		Cutoff:   0.25,
	}
}

// withDefaults fills zero-valued fields with defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.FontSize == 0 {
		c.FontSize = def.FontSize
	}
	if c.Margin == 0 {
		c.Margin = def.Margin
	}
	if c.Radius == 0 {
		c.Radius = def.Radius
	}
	if c.Cutoff == 0 {
		c.Cutoff = def.Cutoff
	}
	return c
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FontSize < 8 {
		return &ConfigError{Field: "FontSize", Reason: "must be at least 8"}
	}
	if c.Margin < 1 {
		return &ConfigError{Field: "Margin", Reason: "must be at least 1"}
	}
	if c.Radius <= 0 {
		return &ConfigError{Field: "Radius", Reason: "must be positive"}
	}
	if c.Cutoff <= 0 || c.Cutoff >= 1 {
		return &ConfigError{Field: "Cutoff", Reason: "must be in (0, 1)"}
	}
	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sdf: invalid config field %s: %s", e.Field, e.Reason)
}
