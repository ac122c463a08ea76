package glyphs

import "github.com/gogpu/glyphs/typeset"

// Option configures Manager creation.
type Option func(*config)

// config holds configuration for Manager.
type config struct {
	sourceURL   string
	localFamily string
	fontSize    int
	loader      RangeLoader
	provider    typeset.FontProvider
	factory     SynthesizerFactory
}

// defaultConfig returns the default manager configuration.
func defaultConfig() config {
	return config{
		fontSize: 24, // nominal label glyph size in pixels
	}
}

// WithGlyphSource sets the URL template of the remote glyph source.
// Without it, any lookup that misses both local synthesis and the cache
// fails with ErrNoGlyphSource.
func WithGlyphSource(source string) Option {
	return func(c *config) {
		c.sourceURL = source
	}
}

// WithRangeLoader sets the collaborator that fetches serialized glyph
// ranges from the configured source.
func WithRangeLoader(l RangeLoader) Option {
	return func(c *config) {
		c.loader = l
	}
}

// WithLocalFontFamily enables local glyph synthesis using the named font
// family for ids in eligible script blocks. Without it every id resolves
// through the remote source.
func WithLocalFontFamily(family string) Option {
	return func(c *config) {
		c.localFamily = family
	}
}

// WithFontProvider sets the resolver that maps a font family and weight
// to font data for local synthesis.
func WithFontProvider(p typeset.FontProvider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithSynthesizerFactory replaces the default SDF synthesizer factory.
// The factory is invoked lazily, once per (stack, resolution tier), and
// the built synthesizer is reused for the lifetime of the stack's cache
// entry.
func WithSynthesizerFactory(f SynthesizerFactory) Option {
	return func(c *config) {
		c.factory = f
	}
}

// WithFontSize sets the nominal glyph size in pixels for local synthesis.
// The double-resolution tier draws at twice this size. The default is 24.
func WithFontSize(px int) Option {
	return func(c *config) {
		if px > 0 {
			c.fontSize = px
		}
	}
}
