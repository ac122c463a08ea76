package segment

// markerClass tags an internal marker token with the merge behavior of
// the sequence it stands in for.
type markerClass uint8

const (
	markerNone markerClass = iota
	markerVirama
	markerConsonant
)

// token is one element of a cluster during the orthographic merge:
// either a real codepoint or an internal marker standing in for a fixed
// multi-codepoint conjunct sequence. Tagged tokens, rather than
// private-use placeholder codepoints, keep genuine private-use-area text
// from colliding with the internal encoding.
type token struct {
	r     rune
	seq   []rune // non-nil for markers: the replaced sequence
	class markerClass
}

// conjunctSequences are the fixed sequences collapsed into single marker
// tokens before the merge walk, so the merge rules only have to inspect
// the last and first token of adjacent clusters.
var conjunctSequences = []struct {
	seq   []rune
	class markerClass
}{
	// Sinhala al-lakuna joined with ZWJ/ZWNJ requests a conjoined form
	// (yansaya, rakaransaya, touching letters).
	{seq: []rune{0x0DCA, 0x200D}, class: markerVirama},
	{seq: []rune{0x200D, 0x0DCA}, class: markerVirama},
	{seq: []rune{0x0DCA, 0x200C}, class: markerVirama},
	// Tamil ligatures shaped as single glyphs.
	{seq: []rune{0x0B95, 0x0BCD, 0x0BB7}, class: markerConsonant},         // kssa
	{seq: []rune{0x0BB8, 0x0BCD, 0x0BB0, 0x0BC0}, class: markerConsonant}, // shri
	{seq: []rune{0x0BB6, 0x0BCD, 0x0BB0, 0x0BC0}, class: markerConsonant}, // sshri
}

// tokenize converts one cluster into tokens, collapsing known conjunct
// sequences into markers.
func tokenize(cluster []rune) []token {
	toks := make([]token, 0, len(cluster))
	for i := 0; i < len(cluster); {
		if tok, n := matchConjunct(cluster[i:]); n > 0 {
			toks = append(toks, tok)
			i += n
			continue
		}
		toks = append(toks, token{r: cluster[i]})
		i++
	}
	return toks
}

// matchConjunct matches a conjunct sequence at the start of rest,
// returning its marker token and length, or a zero length when nothing
// matches.
func matchConjunct(rest []rune) (token, int) {
	for _, c := range conjunctSequences {
		if len(rest) < len(c.seq) {
			continue
		}
		match := true
		for j, r := range c.seq {
			if rest[j] != r {
				match = false
				break
			}
		}
		if match {
			return token{r: c.seq[0], seq: c.seq, class: c.class}, len(c.seq)
		}
	}
	return token{}, 0
}

// appendRunes expands tokens back to their original scalars. Markers are
// purely internal and never observable in the output.
func appendRunes(dst []rune, toks []token) []rune {
	for _, t := range toks {
		if t.seq != nil {
			dst = append(dst, t.seq...)
		} else {
			dst = append(dst, t.r)
		}
	}
	return dst
}
