package segment

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Reserved private-use scalars appended to the Extend set after parsing.
// They are internal markers and must never appear in real input.
const (
	markerExtendA = 0xE000
	markerExtendB = 0xE001
)

// Tables is the immutable set of codepoint properties driving the
// segmenter and the local-synthesis eligibility check. Build it once at
// process start with BuildTables and pass the handle explicitly to every
// consumer.
type Tables struct {
	prepend     *unicode.RangeTable
	control     *unicode.RangeTable
	extend      *unicode.RangeTable
	spacingMark *unicode.RangeTable

	// Hand-curated, script-specific sets.
	exceptions       *unicode.RangeTable
	invisibleStacker *unicode.RangeTable
	virama           *unicode.RangeTable
	consonants       *unicode.RangeTable
}

// ParseError reports a malformed line in the property specification.
// The specification is versioned and trusted, so a ParseError indicates
// a corrupted or mismatched input rather than an expected condition.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("segment: property spec line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BuildTables parses a grapheme-break property specification into an
// immutable Tables handle. BuildTables is idempotent per specification
// version.
//
// The specification is line oriented:
//
//	CODEPOINT[..CODEPOINT] ; CATEGORY # comment
//
// Blank lines and lines starting with '#' are skipped; the third
// whitespace-separated field is the category; lines with an unrecognized
// category are ignored; a '..' token expands to every codepoint in the
// inclusive range.
func BuildTables(spec string) (*Tables, error) {
	cats := map[string][]rune{
		"Prepend":     nil,
		"Control":     nil,
		"Extend":      nil,
		"SpacingMark": nil,
	}

	sc := bufio.NewScanner(strings.NewReader(spec))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			continue
		}
		category := fields[2]
		runes, ok := cats[category]
		if !ok {
			continue
		}
		lo, hi, err := parseCodepoints(fields[0])
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		for r := lo; r <= hi; r++ {
			runes = append(runes, r)
		}
		cats[category] = runes
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	extend := append(cats["Extend"], markerExtendA, markerExtendB)
	return &Tables{
		prepend:     rangetable.New(cats["Prepend"]...),
		control:     rangetable.New(cats["Control"]...),
		extend:      rangetable.New(extend...),
		spacingMark: rangetable.New(cats["SpacingMark"]...),

		exceptions:       exceptionsTable,
		invisibleStacker: invisibleStackerTable,
		virama:           viramaTable,
		consonants:       consonantTable,
	}, nil
}

// parseCodepoints parses a "XXXX" or "XXXX..YYYY" hexadecimal token into
// an inclusive codepoint range.
func parseCodepoints(tok string) (lo, hi rune, err error) {
	first, rest, isRange := strings.Cut(tok, "..")
	lov, err := strconv.ParseUint(first, 16, 32)
	if err != nil {
		return 0, 0, err
	}
	lo = rune(lov)
	hi = lo
	if isRange {
		hiv, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return 0, 0, err
		}
		hi = rune(hiv)
		if hi < lo {
			return 0, 0, fmt.Errorf("inverted range %s", tok)
		}
	}
	return lo, hi, nil
}

// viramaTable lists the vowel-cancelling signs of Indic-derived scripts.
// A virama followed by a consonant signals a conjunct that must not be
// split across glyph lookups.
var viramaTable = rangetable.New(
	0x094D, // Devanagari
	0x09CD, // Bengali
	0x0A4D, // Gurmukhi
	0x0ACD, // Gujarati
	0x0B4D, // Oriya
	0x0BCD, // Tamil
	0x0C4D, // Telugu
	0x0CCD, // Kannada
	0x0D4D, // Malayalam
	0x0DCA, // Sinhala al-lakuna
	0x0F84, // Tibetan
	0x1B44, // Balinese adeg adeg
	0xA9C0, // Javanese pangkon
)

// invisibleStackerTable lists invisible control signs that explicitly
// mark a conjoining relation; a cluster ending in one always joins the
// next cluster.
var invisibleStackerTable = rangetable.New(
	0x1039, // Myanmar
	0x17D2, // Khmer coeng
	0x1A60, // Tai Tham sakot
	0xAAF6, // Meetei Mayek syllable repha
)

// exceptionsTable lists dependent signs that attach to the preceding
// syllable even though they open a fresh grapheme cluster: two-part
// vowel length marks written to the right of the base.
var exceptionsTable = rangetable.New(
	0x0BD7, // Tamil au length mark
	0x0C55, // Telugu length mark
	0x0C56, // Telugu ai length mark
	0x0CD5, // Kannada length mark
	0x0CD6, // Kannada ai length mark
	0x0D57, // Malayalam au length mark
)

// consonantTable covers the consonant letters of the scripts whose
// conjuncts are formed with a virama.
var consonantTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0915, Hi: 0x0939, Stride: 1}, // Devanagari ka..ha
		{Lo: 0x0958, Hi: 0x095F, Stride: 1}, // Devanagari qa..yya
		{Lo: 0x0995, Hi: 0x09B9, Stride: 1}, // Bengali
		{Lo: 0x0A15, Hi: 0x0A39, Stride: 1}, // Gurmukhi
		{Lo: 0x0A95, Hi: 0x0AB9, Stride: 1}, // Gujarati
		{Lo: 0x0B15, Hi: 0x0B39, Stride: 1}, // Oriya
		{Lo: 0x0B95, Hi: 0x0BB9, Stride: 1}, // Tamil
		{Lo: 0x0C15, Hi: 0x0C39, Stride: 1}, // Telugu
		{Lo: 0x0C95, Hi: 0x0CB9, Stride: 1}, // Kannada
		{Lo: 0x0D15, Hi: 0x0D39, Stride: 1}, // Malayalam
		{Lo: 0x0D9A, Hi: 0x0DC6, Stride: 1}, // Sinhala
		{Lo: 0x0F40, Hi: 0x0F6C, Stride: 1}, // Tibetan
		{Lo: 0x1000, Hi: 0x1020, Stride: 1}, // Myanmar
		{Lo: 0x1780, Hi: 0x17A2, Stride: 1}, // Khmer
		{Lo: 0x1B13, Hi: 0x1B33, Stride: 1}, // Balinese
		{Lo: 0xA98F, Hi: 0xA9B2, Stride: 1}, // Javanese
	},
}

// Block is a contiguous codepoint block eligible for local glyph
// synthesis. Dense blocks need double-resolution rasterization at label
// sizes.
type Block struct {
	Name   string
	Lo, Hi rune
	Dense  bool
}

// localBlocks lists the script blocks whose glyphs may be synthesized
// locally in place of a remote atlas.
var localBlocks = []Block{
	{Name: "Devanagari", Lo: 0x0900, Hi: 0x097F},
	{Name: "Bengali", Lo: 0x0980, Hi: 0x09FF},
	{Name: "Gujarati", Lo: 0x0A80, Hi: 0x0AFF},
	{Name: "Tamil", Lo: 0x0B80, Hi: 0x0BFF},
	{Name: "Telugu", Lo: 0x0C00, Hi: 0x0C7F},
	{Name: "Tibetan", Lo: 0x0F00, Hi: 0x0FFF},
	{Name: "Myanmar", Lo: 0x1000, Hi: 0x109F},
	{Name: "Khmer", Lo: 0x1780, Hi: 0x17FF},
	{Name: "Hiragana", Lo: 0x3040, Hi: 0x309F, Dense: true},
	{Name: "Katakana", Lo: 0x30A0, Hi: 0x30FF, Dense: true},
	{Name: "CJK Unified Ideographs Extension A", Lo: 0x3400, Hi: 0x4DBF, Dense: true},
	{Name: "CJK Unified Ideographs", Lo: 0x4E00, Hi: 0x9FFF, Dense: true},
	{Name: "Hangul Syllables", Lo: 0xAC00, Hi: 0xD7AF, Dense: true},
}

// LocalBlock returns the eligible script block containing r, if any.
// The raw codepoint decides eligibility; the blocks cover only the Basic
// Multilingual Plane, consistent with the remote source's 16-bit range
// addressing.
func (t *Tables) LocalBlock(r rune) (Block, bool) {
	for _, b := range localBlocks {
		if r >= b.Lo && r <= b.Hi {
			return b, true
		}
	}
	return Block{}, false
}
