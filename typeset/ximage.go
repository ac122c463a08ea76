package typeset

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// XImage is a Typesetter backed by golang.org/x/image's opentype
// rasterizer. There is no shaping: each rune is measured and drawn
// independently, which is correct for scripts without conjuncts. Use
// GoText where ligature substitution matters.
type XImage struct {
	face font.Face
}

// NewXImage parses TTF/OTF font data and creates a typesetter drawing
// at the given pixel size.
func NewXImage(data []byte, size float64) (*XImage, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &XImage{face: face}, nil
}

// Measure implements Typesetter.
func (x *XImage) Measure(segment string) (Metrics, error) {
	bounds, advance := font.BoundString(x.face, segment)
	if bounds.Empty() {
		return Metrics{Advance: fixedToFloat(advance)}, nil
	}
	// BoundString's Y axis grows downwards, so the ascent is -Min.Y.
	return Metrics{
		Ascent:      fixedToFloat(-bounds.Min.Y),
		Descent:     fixedToFloat(bounds.Max.Y),
		LeftExtent:  fixedToFloat(bounds.Min.X),
		RightExtent: fixedToFloat(bounds.Max.X),
		Advance:     fixedToFloat(advance),
	}, nil
}

// Rasterize implements Typesetter.
func (x *XImage) Rasterize(segment string, dst *image.Alpha, dot image.Point) error {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Alpha{A: 0xFF}),
		Face: x.face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(segment)
	return nil
}
