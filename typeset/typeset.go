package typeset

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Metrics is the measured ink extent of one segment at a configured
// size. All values are in pixels. Ascent and Descent are positive
// distances above and below the baseline; LeftExtent and RightExtent are
// horizontal distances from the pen position to the ink edges.
type Metrics struct {
	Ascent  float64
	Descent float64

	LeftExtent  float64
	RightExtent float64

	// Advance is the pen movement after the segment.
	Advance float64
}

// Typesetter measures and rasterizes text segments at a fixed font and
// size.
//
// Implementations are not required to be safe for concurrent use; the
// caller serializes access.
type Typesetter interface {
	// Measure returns the ink extents of segment.
	Measure(segment string) (Metrics, error)

	// Rasterize draws segment into dst with the pen placed at dot on
	// the baseline, accumulating 8-bit alpha coverage.
	Rasterize(segment string, dst *image.Alpha, dot image.Point) error
}

// Weight selects a font weight when resolving a family. Values follow
// the CSS numeric convention.
type Weight int

// Common weights.
const (
	WeightLight   Weight = 200
	WeightRegular Weight = 400
	WeightMedium  Weight = 500
	WeightBold    Weight = 900
)

// FontProvider resolves a font family name and weight to TTF/OTF font
// data. Implementations typically search system fonts or an embedded
// set.
type FontProvider interface {
	Resolve(family string, weight Weight) ([]byte, error)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
