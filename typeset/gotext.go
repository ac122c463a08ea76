package typeset

import (
	"bytes"
	"image"
	"image/draw"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/vector"
)

// GoText is a Typesetter backed by go-text/typesetting's HarfBuzz
// shaper, with glyph outlines rasterized through
// golang.org/x/image/vector. Shaping makes it the right backend for
// conjunct segments: a virama sequence drawn rune by rune would fall
// apart into dotted circles.
type GoText struct {
	font *font.Font
	size float64
	upem float64

	// shaperPool pools HarfbuzzShaper instances. They carry mutable
	// buffers and are not safe for concurrent use, but reusing across
	// sequential calls is efficient.
	shaperPool sync.Pool
}

// NewGoText parses TTF/OTF font data and creates a typesetter drawing
// at the given pixel size.
func NewGoText(data []byte, size float64) (*GoText, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &GoText{
		font: face.Font,
		size: size,
		upem: float64(face.Upem()),
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// shape runs HarfBuzz shaping over the whole segment as one run.
// font.Face is not safe for concurrent use, so each call gets its own
// lightweight instance around the shared thread-safe *Font.
func (g *GoText) shape(segment string) (shaping.Output, *font.Face) {
	face := font.NewFace(g.font)
	runes := []rune(segment)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(g.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	sh := g.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := sh.Shape(input)
	g.shaperPool.Put(sh)
	return out, face
}

// Measure implements Typesetter. Extents are the union of the shaped
// glyph ink boxes.
func (g *GoText) Measure(segment string) (Metrics, error) {
	out, _ := g.shape(segment)

	var m Metrics
	var x float64
	first := true
	for _, gl := range out.Glyphs {
		left := x + fixedToFloat(gl.XOffset) + fixedToFloat(gl.XBearing)
		right := left + fixedToFloat(gl.Width)
		top := fixedToFloat(gl.YOffset) + fixedToFloat(gl.YBearing)
		// Height grows downwards from the top bearing and is negative.
		bottom := top + fixedToFloat(gl.Height)

		if first {
			m.LeftExtent, m.RightExtent = left, right
			first = false
		} else {
			m.LeftExtent = min(m.LeftExtent, left)
			m.RightExtent = max(m.RightExtent, right)
		}
		m.Ascent = max(m.Ascent, top)
		m.Descent = max(m.Descent, -bottom)

		x += fixedToFloat(gl.XAdvance)
	}
	m.Advance = fixedToFloat(out.Advance)
	return m, nil
}

// Rasterize implements Typesetter. Glyph outlines are scaled from font
// units, flipped to the image's downward Y axis and accumulated into a
// single coverage pass.
func (g *GoText) Rasterize(segment string, dst *image.Alpha, dot image.Point) error {
	out, face := g.shape(segment)
	scale := float32(g.size / g.upem)

	bounds := dst.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Over

	penX := float32(dot.X)
	penY := float32(dot.Y)
	open := false
	for _, gl := range out.Glyphs {
		outline, ok := face.GlyphData(gl.GlyphID).(font.GlyphOutline)
		if !ok {
			penX += float32(fixedToFloat(gl.XAdvance))
			continue
		}
		ox := penX + float32(fixedToFloat(gl.XOffset))
		oy := penY - float32(fixedToFloat(gl.YOffset))
		for _, seg := range outline.Segments {
			tx := func(p opentype.SegmentPoint) (float32, float32) {
				return ox + p.X*scale, oy - p.Y*scale
			}
			switch seg.Op {
			case opentype.SegmentOpMoveTo:
				if open {
					r.ClosePath()
				}
				px, py := tx(seg.Args[0])
				r.MoveTo(px, py)
				open = true
			case opentype.SegmentOpLineTo:
				px, py := tx(seg.Args[0])
				r.LineTo(px, py)
			case opentype.SegmentOpQuadTo:
				cx, cy := tx(seg.Args[0])
				px, py := tx(seg.Args[1])
				r.QuadTo(cx, cy, px, py)
			case opentype.SegmentOpCubeTo:
				c1x, c1y := tx(seg.Args[0])
				c2x, c2y := tx(seg.Args[1])
				px, py := tx(seg.Args[2])
				r.CubeTo(c1x, c1y, c2x, c2y, px, py)
			}
		}
		penX += float32(fixedToFloat(gl.XAdvance))
	}
	if open {
		r.ClosePath()
	}
	r.Draw(dst, bounds, image.Opaque, image.Point{})
	return nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Segments are single units, never mixed-script
// runs.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.LookupScript('a')
}
