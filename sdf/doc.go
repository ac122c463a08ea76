// Package sdf synthesizes signed-distance-field glyph bitmaps from text
// segments.
//
// A Synthesizer rasterizes one segment through a typeset.Typesetter into
// an alpha coverage buffer, then converts the coverage into an 8-bit SDF
// using the two-pass squared-Euclidean distance transform of Felzenszwalb
// and Huttenlocher. SDF bitmaps encode, per pixel, the signed distance to
// the nearest shape boundary, which lets the renderer scale, outline and
// halo glyphs without re-rasterizing.
//
// A Synthesizer reuses its raster surface and scratch grids across
// draws; Draw serializes access internally.
package sdf
