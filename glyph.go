package glyphs

import (
	"fmt"
	"image"
)

// GlyphMetrics positions a glyph bitmap relative to the text baseline.
//
// Width and Height are the logical glyph dimensions in pixels. For a
// double-resolution glyph the bitmap holds twice as many pixels per axis
// as the logical dimensions.
type GlyphMetrics struct {
	// Width and Height are the logical glyph dimensions in pixels.
	Width  int
	Height int

	// Left is the horizontal offset from the pen position to the left
	// edge of the bitmap.
	Left float64

	// Top is the vertical offset from the baseline to the top edge of
	// the bitmap (positive above the baseline).
	Top float64

	// Advance is how far the pen moves after drawing this glyph.
	Advance float64

	// DoubleResolution reports that the bitmap was rasterized at twice
	// the nominal size and should be scaled down by the consumer. Used
	// for dense scripts (CJK ideographs, Hangul, kana) that need finer
	// detail at label sizes.
	DoubleResolution bool
}

// Glyph is one rasterized segment: an 8-bit alpha-only coverage or
// signed-distance bitmap plus positioning metrics.
//
// Identity is (font stack, ID). The ID is a segment string as produced by
// the segmenter, not necessarily a single codepoint.
type Glyph struct {
	ID      string
	Bitmap  *image.Alpha
	Metrics GlyphMetrics
}

// Clone returns a deep copy of g. The bitmap is copied, never aliased,
// because cache-internal buffers may later be handed to a zero-copy
// transfer. Clone of nil returns nil.
func (g *Glyph) Clone() *Glyph {
	if g == nil {
		return nil
	}
	out := *g
	if g.Bitmap != nil {
		pix := make([]uint8, len(g.Bitmap.Pix))
		copy(pix, g.Bitmap.Pix)
		out.Bitmap = &image.Alpha{Pix: pix, Stride: g.Bitmap.Stride, Rect: g.Bitmap.Rect}
	}
	return &out
}

// rangeSize is the number of codepoints covered by one remote fetch.
const rangeSize = 256

// maxRangeStart is the highest addressable range start (the Basic
// Multilingual Plane is the remote source's addressable space).
const maxRangeStart = 0xFFFF

// Range identifies a 256-codepoint block of the Basic Multilingual Plane.
// It is the unit of remote fetch granularity and of "has this been
// requested" bookkeeping.
type Range int

// RangeOf returns the range containing the codepoint r.
func RangeOf(r rune) Range {
	return Range(int(r) / rangeSize)
}

// Start returns the first codepoint of the range.
func (r Range) Start() rune { return rune(int(r) * rangeSize) }

// End returns the last codepoint of the range.
func (r Range) End() rune { return r.Start() + rangeSize - 1 }

// Valid reports whether the range start is addressable by the remote
// source. Ranges beyond U+FFFF are rejected before any fetch is issued.
func (r Range) Valid() bool {
	return r >= 0 && int(r)*rangeSize <= maxRangeStart
}

// String renders the range in the conventional "start-end" decimal form
// used by glyph source URLs, e.g. "0-255".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start(), r.End())
}
