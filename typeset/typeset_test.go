package typeset

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"
)

func TestFixedConversion(t *testing.T) {
	tests := []struct {
		f    fixed.Int26_6
		want float64
	}{
		{0, 0},
		{64, 1},
		{96, 1.5},
		{-32, -0.5},
	}
	for _, tt := range tests {
		if got := fixedToFloat(tt.f); got != tt.want {
			t.Errorf("fixedToFloat(%d) = %v, want %v", tt.f, got, tt.want)
		}
		if got := floatToFixed(tt.want); got != tt.f {
			t.Errorf("floatToFixed(%v) = %d, want %d", tt.want, got, tt.f)
		}
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		runes []rune
		want  language.Script
	}{
		{[]rune("abc"), language.LookupScript('a')},
		{[]rune("क्ष"), language.LookupScript('क')},
		{[]rune(" ஸ்ரீ"), language.LookupScript('ஸ')}, // leading space skipped
		{[]rune("  "), language.LookupScript('a')},  // all-space fallback
	}
	for _, tt := range tests {
		if got := detectScript(tt.runes); got != tt.want {
			t.Errorf("detectScript(%q) = %v, want %v", string(tt.runes), got, tt.want)
		}
	}
}

func TestNewXImageRejectsGarbage(t *testing.T) {
	if _, err := NewXImage([]byte("not a font"), 24); err == nil {
		t.Fatal("NewXImage should reject non-font data")
	}
}

func TestNewGoTextRejectsGarbage(t *testing.T) {
	if _, err := NewGoText([]byte("not a font"), 24); err == nil {
		t.Fatal("NewGoText should reject non-font data")
	}
}
