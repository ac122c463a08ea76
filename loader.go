package glyphs

import (
	"context"
	"net/url"
	"strings"
)

// RangeLoader fetches one 256-codepoint glyph range for a font stack from
// a remote source. The payload format is owned by the loader, not by this
// package.
//
// The returned map covers every id the source recognizes within the
// range; a nil value records explicit absence. Ids absent from the map
// are treated as missing from the source once the range is resolved.
//
// Load is called at most once per cold range per stack; concurrent
// lookups for the same range share a single call.
type RangeLoader interface {
	Load(ctx context.Context, stack string, rng Range, source string) (map[string]*Glyph, error)
}

// RangeLoaderFunc adapts a function to the RangeLoader interface.
type RangeLoaderFunc func(ctx context.Context, stack string, rng Range, source string) (map[string]*Glyph, error)

// Load implements RangeLoader.
func (f RangeLoaderFunc) Load(ctx context.Context, stack string, rng Range, source string) (map[string]*Glyph, error) {
	return f(ctx, stack, rng, source)
}

// ExpandSourceURL substitutes the {fontstack} and {range} tokens of a
// glyph source URL template, e.g.
//
//	https://fonts.example/{fontstack}/{range}.pbf
//
// Loaders are free to use it; the manager passes the template through
// untouched.
func ExpandSourceURL(source, stack string, rng Range) string {
	s := strings.ReplaceAll(source, "{fontstack}", url.PathEscape(stack))
	return strings.ReplaceAll(s, "{range}", rng.String())
}
