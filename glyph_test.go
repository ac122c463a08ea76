package glyphs

import (
	"image"
	"testing"

	"github.com/gogpu/glyphs/typeset"
)

func TestRangeOf(t *testing.T) {
	tests := []struct {
		r    rune
		want Range
	}{
		{0, 0},
		{'A', 0},
		{0xFF, 0},
		{0x100, 1},
		{'क', 9},       // U+0915
		{0xFFFF, 255},  // last BMP range
		{0x10348, 259}, // astral
	}
	for _, tt := range tests {
		if got := RangeOf(tt.r); got != tt.want {
			t.Errorf("RangeOf(%U) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	rng := Range(1)
	if rng.Start() != 0x100 || rng.End() != 0x1FF {
		t.Errorf("Range(1) = [%U, %U], want [U+0100, U+01FF]", rng.Start(), rng.End())
	}
	if got := rng.String(); got != "256-511" {
		t.Errorf("Range(1).String() = %q, want %q", got, "256-511")
	}
	if got := Range(0).String(); got != "0-255" {
		t.Errorf("Range(0).String() = %q, want %q", got, "0-255")
	}
}

func TestRangeValid(t *testing.T) {
	tests := []struct {
		rng  Range
		want bool
	}{
		{0, true},
		{255, true}, // starts at U+FF00, still addressable
		{256, false},
		{RangeOf(0x10348), false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := tt.rng.Valid(); got != tt.want {
			t.Errorf("Range(%d).Valid() = %v, want %v", tt.rng, got, tt.want)
		}
	}
}

func TestGlyphClone(t *testing.T) {
	var nilGlyph *Glyph
	if nilGlyph.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	orig := &Glyph{
		ID:      "A",
		Bitmap:  image.NewAlpha(image.Rect(0, 0, 2, 2)),
		Metrics: GlyphMetrics{Width: 2, Height: 2, Advance: 3},
	}
	orig.Bitmap.Pix[0] = 0x7F

	clone := orig.Clone()
	if clone == orig || clone.Bitmap == orig.Bitmap {
		t.Fatal("Clone must not alias the original")
	}
	if clone.Bitmap.Pix[0] != 0x7F || clone.Metrics != orig.Metrics {
		t.Error("Clone must preserve pixels and metrics")
	}

	clone.Bitmap.Pix[0] = 0xFF
	if orig.Bitmap.Pix[0] != 0x7F {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestExpandSourceURL(t *testing.T) {
	got := ExpandSourceURL("https://fonts.example/{fontstack}/{range}.pbf", "Noto Sans", Range(1))
	want := "https://fonts.example/Noto%20Sans/256-511.pbf"
	if got != want {
		t.Errorf("ExpandSourceURL = %q, want %q", got, want)
	}
}

func TestStackWeight(t *testing.T) {
	tests := []struct {
		stack string
		want  typeset.Weight
	}{
		{"Noto Sans Regular", typeset.WeightRegular},
		{"Noto Sans Bold", typeset.WeightBold},
		{"Open Sans Semibold", typeset.WeightBold},
		{"Roboto Medium", typeset.WeightMedium},
		{"Lato Light", typeset.WeightLight},
		{"Arial Unicode MS", typeset.WeightRegular},
	}
	for _, tt := range tests {
		if got := StackWeight(tt.stack); got != tt.want {
			t.Errorf("StackWeight(%q) = %d, want %d", tt.stack, got, tt.want)
		}
	}
}
