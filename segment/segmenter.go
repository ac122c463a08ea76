package segment

import "unicode"

// Segmenter partitions a string into renderable units: grapheme clusters
// merged across conjunct and dependent-sign boundaries, so every output
// segment is safe to shape and cache independently.
//
// Segmenter holds no mutable state and is safe for concurrent use.
type Segmenter struct {
	tables *Tables
}

// NewSegmenter creates a Segmenter over the given property tables.
func NewSegmenter(t *Tables) *Segmenter {
	return &Segmenter{tables: t}
}

// Segment splits text into an ordered list of segments. Concatenating
// the result in order reproduces text exactly: the partition is lossless
// and non-overlapping.
func (s *Segmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return s.merge(s.clusters(text))
}

// clusters is the grapheme-clustering pass. It walks codepoints left to
// right keeping a current cluster and a prepend-pending flag: marks and
// controls extend the cluster, a Prepend codepoint opens a cluster that
// also captures the following codepoint, anything else starts a fresh
// cluster.
func (s *Segmenter) clusters(text string) [][]rune {
	t := s.tables
	var out [][]rune
	var cur []rune
	pending := false
	for _, r := range text {
		switch {
		case unicode.Is(t.extend, r), unicode.Is(t.spacingMark, r), unicode.Is(t.control, r):
			cur = append(cur, r)
		case unicode.Is(t.prepend, r):
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []rune{r}
			pending = true
		case pending:
			cur = append(cur, r)
			pending = false
		default:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []rune{r}
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// merge is the orthographic pass: it walks the cluster list and
// suppresses the boundary between adjacent clusters that form one
// syllable. Clusters are tokenized first so the join test only inspects
// the trailing and leading token.
func (s *Segmenter) merge(clusters [][]rune) []string {
	if len(clusters) == 0 {
		return nil
	}
	out := make([]string, 0, len(clusters))
	acc := tokenize(clusters[0])
	for _, cl := range clusters[1:] {
		next := tokenize(cl)
		if s.joins(acc[len(acc)-1], next[0]) {
			acc = append(acc, next...)
			continue
		}
		out = append(out, string(appendRunes(nil, acc)))
		acc = next
	}
	return append(out, string(appendRunes(nil, acc)))
}

// joins reports whether the boundary between two adjacent clusters must
// be suppressed: a virama before a consonant, a trailing invisible
// stacker, or a leading exception mark.
func (s *Segmenter) joins(last, first token) bool {
	t := s.tables
	switch {
	case s.isVirama(last) && s.isConsonant(first):
		return true
	case last.seq == nil && unicode.Is(t.invisibleStacker, last.r):
		return true
	case first.seq == nil && unicode.Is(t.exceptions, first.r):
		return true
	}
	return false
}

func (s *Segmenter) isVirama(tok token) bool {
	if tok.class == markerVirama {
		return true
	}
	return tok.seq == nil && unicode.Is(s.tables.virama, tok.r)
}

func (s *Segmenter) isConsonant(tok token) bool {
	if tok.class == markerConsonant {
		return true
	}
	return tok.seq == nil && unicode.Is(s.tables.consonants, tok.r)
}
