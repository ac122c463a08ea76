package glyphs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphs package.
var (
	// ErrNoGlyphSource is returned when a lookup needs a remote range
	// fetch but no glyph source URL or loader is configured.
	ErrNoGlyphSource = errors.New("glyphs: no glyph source configured")

	// ErrRangeOverflow is returned for ids whose leading codepoint falls
	// in a range starting beyond U+FFFF. No fetch is issued.
	ErrRangeOverflow = errors.New("glyphs: glyphs beyond U+FFFF are not supported")

	// ErrNoFontProvider is returned when a local font family is
	// configured but no font provider can resolve it to font data.
	ErrNoFontProvider = errors.New("glyphs: local font family configured without a font provider")
)

// FetchError wraps a failed range fetch. It is delivered to every lookup
// awaiting the same pending request. The range is not marked resolved and
// the failure is not cached, so a later lookup retries from scratch.
type FetchError struct {
	Stack string
	Range Range
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("glyphs: fetching range %s of stack %q: %v", e.Range, e.Stack, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
