package sdf

import (
	"image"
	"math"
	"sync"

	"github.com/gogpu/glyphs/typeset"
)

// topAscentScale stretches the measured ascent when deriving the glyph
// top offset, so tall combining marks above the base are not clipped.
// Empirical.
const topAscentScale = 1.25

// Metrics describes a synthesized glyph bitmap relative to the pen
// position on the baseline.
type Metrics struct {
	// Width and Height are the glyph dimensions in pixels, excluding
	// the margin.
	Width  int
	Height int

	// Left is the horizontal offset from the pen to the bitmap's left
	// edge; Top the vertical offset from the baseline to its top edge.
	Left int
	Top  int

	// Advance is the pen movement after the segment, in pixels.
	Advance float64
}

// Synthesizer rasterizes segments into signed-distance-field bitmaps.
// The raster surface and the distance-transform scratch grids are reused
// in place across draws; Draw serializes access, since concurrent draws
// would corrupt the shared scratch state.
type Synthesizer struct {
	mu  sync.Mutex
	cfg Config
	ts  typeset.Typesetter

	size     int          // surface edge: FontSize + 8*Margin
	coverage *image.Alpha // reused draw surface

	// Squared-distance grids and 1-D envelope scratch.
	outer, inner []float64
	f, z         []float64
	v            []int
}

// New creates a Synthesizer drawing through the given typesetter.
// Zero-valued Config fields take their defaults.
func New(ts typeset.Typesetter, cfg Config) (*Synthesizer, error) {
	if ts == nil {
		return nil, ErrNilTypesetter
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := cfg.FontSize + 8*cfg.Margin
	return &Synthesizer{
		cfg:      cfg,
		ts:       ts,
		size:     size,
		coverage: image.NewAlpha(image.Rect(0, 0, size, size)),
		outer:    make([]float64, size*size),
		inner:    make([]float64, size*size),
		f:        make([]float64, size),
		z:        make([]float64, size+1),
		v:        make([]int, size),
	}, nil
}

// Config returns the synthesizer's configuration.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// Draw rasterizes one segment and converts its coverage into an 8-bit
// SDF bitmap. The shape boundary encodes as round(255*(1-Cutoff)), with
// values above it inside the shape and values decaying to zero over
// Radius pixels outside it.
//
// Draw is safe for concurrent use; calls are serialized internally.
func (s *Synthesizer) Draw(segment string) (*image.Alpha, Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	met, err := s.ts.Measure(segment)
	if err != nil {
		return nil, Metrics{}, err
	}

	glyphTop := int(math.Ceil(met.Ascent * topAscentScale))
	glyphWidth := int(math.Ceil(met.RightExtent - met.LeftExtent))
	glyphHeight := glyphTop + int(math.Ceil(met.Descent))
	// Clip the glyph box so that, margins included, the draw never
	// exceeds the size×size surface and scratch grids.
	if maxSide := s.size - 2*s.cfg.Margin; glyphWidth > maxSide {
		glyphWidth = maxSide
	}
	if maxSide := s.size - 2*s.cfg.Margin; glyphHeight > maxSide {
		glyphHeight = maxSide
	}
	if glyphWidth < 0 {
		glyphWidth = 0
	}

	// A zero measured extent is a legitimate result (spacing or
	// invisible segments), handled explicitly rather than through
	// zero-as-unset defaults: return a zero-area bitmap with square
	// placeholder metrics instead of failing.
	if glyphWidth == 0 || glyphHeight <= 0 {
		return image.NewAlpha(image.Rectangle{}), s.placeholderMetrics(met.Advance), nil
	}

	width := glyphWidth + 2*s.cfg.Margin
	height := glyphHeight + 2*s.cfg.Margin

	clear(s.coverage.Pix)
	dot := image.Point{X: s.cfg.Margin, Y: s.cfg.Margin + glyphTop}
	if err := s.ts.Rasterize(segment, s.coverage, dot); err != nil {
		return nil, Metrics{}, err
	}

	// Seed the squared-distance grids from coverage. Fully covered
	// pixels are inside (outer distance zero); partially covered pixels
	// sit within half a pixel of the boundary, in proportion to their
	// coverage.
	stride := s.coverage.Stride
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			a := float64(s.coverage.Pix[y*stride+x]) / 255
			switch {
			case a == 1:
				s.outer[i] = 0
				s.inner[i] = inf
			case a == 0:
				s.outer[i] = inf
				s.inner[i] = 0
			default:
				d := 0.5 - a
				if d > 0 {
					s.outer[i] = d * d
				} else {
					s.outer[i] = 0
				}
				if d < 0 {
					s.inner[i] = d * d
				} else {
					s.inner[i] = 0
				}
			}
		}
	}

	edt(s.outer, width, height, s.f, s.z, s.v)
	edt(s.inner, width, height, s.f, s.z, s.v)

	out := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		d := math.Sqrt(s.outer[i]) - math.Sqrt(s.inner[i])
		q := math.Round(255 - 255*(d/s.cfg.Radius+s.cfg.Cutoff))
		out.Pix[i] = uint8(math.Max(0, math.Min(255, q)))
	}

	return out, Metrics{
		Width:   glyphWidth,
		Height:  glyphHeight,
		Left:    0,
		Top:     glyphTop,
		Advance: met.Advance,
	}, nil
}

// placeholderMetrics positions a zero-area bitmap: a square em box with
// conservative positioning.
func (s *Synthesizer) placeholderMetrics(advance float64) Metrics {
	if advance <= 0 {
		advance = float64(s.cfg.FontSize)
	}
	return Metrics{
		Width:   s.cfg.FontSize,
		Height:  s.cfg.FontSize,
		Left:    0,
		Top:     s.cfg.FontSize,
		Advance: advance,
	}
}
