package glyphs

import (
	"strings"

	"github.com/gogpu/glyphs/sdf"
	"github.com/gogpu/glyphs/typeset"
)

// Synthesizer rasterizes one segment id into a glyph, locally, without
// touching the remote source.
//
// Implementations reuse internal scratch buffers across draws and must
// serialize their own access; the Manager calls Synthesize without
// holding its lock.
type Synthesizer interface {
	Synthesize(id string) (*Glyph, error)
}

// SynthesizerFactory builds the synthesizer for one (font stack,
// resolution tier) pair. The Manager invokes it lazily on the first
// eligible lookup at that tier and reuses the result for the lifetime of
// the stack's cache entry. Tests substitute it via
// WithSynthesizerFactory.
type SynthesizerFactory func(family, stack string, double bool) (Synthesizer, error)

// StackWeight infers a font weight from a stack name, e.g.
// "Noto Sans Bold" selects WeightBold. Stacks without a recognized
// weight word map to WeightRegular.
func StackWeight(stack string) typeset.Weight {
	name := strings.ToLower(stack)
	switch {
	case strings.Contains(name, "bold"):
		return typeset.WeightBold
	case strings.Contains(name, "medium"):
		return typeset.WeightMedium
	case strings.Contains(name, "light"):
		return typeset.WeightLight
	}
	return typeset.WeightRegular
}

// Offsets applied to locally synthesized metrics so they line up,
// approximately, with remotely supplied glyphs that use a different
// baseline convention. Empirical, not exact.
const (
	localTopAdjust   = -8.0
	doubleTopAdjust  = -27.5
	doubleLeftAdjust = 0.5
)

// sdfFactory is the default SynthesizerFactory: go-text shaping and
// rasterization into an SDF bitmap, with font data resolved through the
// configured FontProvider.
func sdfFactory(provider typeset.FontProvider, fontSize int) SynthesizerFactory {
	return func(family, stack string, double bool) (Synthesizer, error) {
		if provider == nil {
			return nil, ErrNoFontProvider
		}
		data, err := provider.Resolve(family, StackWeight(stack))
		if err != nil {
			return nil, err
		}
		cfg := sdf.DefaultConfig()
		cfg.FontSize = fontSize
		if double {
			// The dense-script tier draws everything at twice the
			// scale, including the field decay radius.
			cfg.FontSize *= 2
			cfg.Margin *= 2
			cfg.Radius *= 2
		}
		ts, err := typeset.NewGoText(data, float64(cfg.FontSize))
		if err != nil {
			return nil, err
		}
		syn, err := sdf.New(ts, cfg)
		if err != nil {
			return nil, err
		}
		return &sdfSynthesizer{syn: syn, double: double}, nil
	}
}

// sdfSynthesizer adapts an sdf.Synthesizer to the Manager's Synthesizer
// interface, scaling double-resolution metrics back to logical pixels.
type sdfSynthesizer struct {
	syn    *sdf.Synthesizer
	double bool
}

func (s *sdfSynthesizer) Synthesize(id string) (*Glyph, error) {
	bitmap, met, err := s.syn.Draw(id)
	if err != nil {
		return nil, err
	}
	g := &Glyph{ID: id, Bitmap: bitmap}
	if s.double {
		g.Metrics = GlyphMetrics{
			Width:            met.Width / 2,
			Height:           met.Height / 2,
			Left:             float64(met.Left)/2 + doubleLeftAdjust,
			Top:              float64(met.Top)/2 + doubleTopAdjust,
			Advance:          met.Advance / 2,
			DoubleResolution: true,
		}
	} else {
		g.Metrics = GlyphMetrics{
			Width:   met.Width,
			Height:  met.Height,
			Left:    float64(met.Left),
			Top:     float64(met.Top) + localTopAdjust,
			Advance: met.Advance,
		}
	}
	return g, nil
}
