// Package segment partitions text into renderable units for glyph
// caching and shaping.
//
// A renderable unit is a grapheme cluster, further merged across
// conjunct and dependent-sign boundaries so that orthographic syllables
// of Indic, Sinhala, Balinese, Javanese and related scripts stay atomic.
// Splitting such units across independently shaped and cached glyphs
// produces visible baseline misalignment; keeping them together is
// driven entirely by data tables, not per-script code.
//
// The tables are built once at process start from a versioned Unicode
// grapheme-break property specification:
//
//	tables, err := segment.BuildTables(spec)
//	seg := segment.NewSegmenter(tables)
//	units := seg.Segment("क्षत्रिय")
//
// The segmenter is a pragmatic script-aware approximation, not a full
// UAX #29 implementation.
package segment
