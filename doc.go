// Package glyphs resolves text segments to rasterized glyph bitmaps for
// label rendering.
//
// # Overview
//
// glyphs is organized around three cooperating parts:
//
//   - segment: a Unicode-table-driven segmenter that partitions a string
//     into renderable units that are safe to shape and cache independently
//     (grapheme clusters merged across conjunct boundaries).
//   - Manager: a per-font-stack glyph cache that resolves segment ids to
//     glyphs, coalescing concurrent remote fetches per 256-codepoint range
//     and falling back to local synthesis for scripts without a usable
//     remote atlas.
//   - sdf: a local synthesizer that rasterizes a segment and converts the
//     coverage raster into an 8-bit signed-distance-field bitmap.
//
// # Quick Start
//
//	tables, err := segment.BuildTables(graphemeBreakSpec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mgr := glyphs.NewManager(tables,
//	    glyphs.WithGlyphSource("https://fonts.example/{fontstack}/{range}.pbf"),
//	    glyphs.WithRangeLoader(loader),
//	)
//
//	got, err := mgr.GetGlyphs(ctx, map[string][]string{
//	    "Noto Sans Regular": {"H", "i"},
//	})
//
// Segment ids come from the segmenter:
//
//	seg := segment.NewSegmenter(tables)
//	ids := seg.Segment("नमस्ते")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Manager, Glyph, RangeLoader, options
//   - segment: property tables, grapheme clustering, orthographic merge
//   - sdf: distance-transform glyph synthesis
//   - typeset: measurement/rasterization collaborators (x/image and
//     go-text/typesetting backed)
package glyphs
