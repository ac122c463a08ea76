// Package typeset abstracts the font measurement and rasterization
// backend used by glyph synthesis.
//
// Two backends are provided:
//
//   - XImage: golang.org/x/image's opentype rasterizer. No shaping; each
//     rune is drawn independently.
//   - GoText: go-text/typesetting's HarfBuzz shaper with outlines
//     rasterized through golang.org/x/image/vector. Required for
//     conjunct segments, where per-rune drawing breaks the ligature.
package typeset
