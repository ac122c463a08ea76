package segment

import (
	"errors"
	"testing"
	"unicode"
)

// testSpec is a trimmed grapheme-break property specification in the
// upstream line grammar, covering the scripts the tests exercise.
const testSpec = `
# GraphemeBreakProperty (excerpt)
# ================================================

0600..0605    ; Prepend # Cf   [6] ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE
06DD          ; Prepend # Cf       ARABIC END OF AYAH

0000..0009    ; Control # Cc  [10] <control-0000>..<control-0009>
000B..001F    ; Control # Cc  [21] <control-000B>..<control-001F>
200B          ; Control # Cf       ZERO WIDTH SPACE

0300..036F    ; Extend # Mn [112] COMBINING GRAVE ACCENT..COMBINING LATIN SMALL LETTER X
200C..200D    ; Extend # Cf   [2] ZERO WIDTH NON-JOINER..ZERO WIDTH JOINER
0900..0902    ; Extend # Mn   [3] DEVANAGARI SIGN INVERTED CANDRABINDU..DEVANAGARI SIGN ANUSVARA
093C          ; Extend # Mn       DEVANAGARI SIGN NUKTA
0941..0948    ; Extend # Mn   [8] DEVANAGARI VOWEL SIGN U..DEVANAGARI VOWEL SIGN AI
094D          ; Extend # Mn       DEVANAGARI SIGN VIRAMA
0BCD          ; Extend # Mn       TAMIL SIGN VIRAMA
0BC0          ; Extend # Mn       TAMIL VOWEL SIGN II
0DCA          ; Extend # Mn       SINHALA SIGN AL-LAKUNA
0DD2..0DD4    ; Extend # Mn   [3] SINHALA VOWEL SIGN KETTI IS-PILLA..SINHALA VOWEL SIGN KETTI PAA-PILLA
17D2          ; Extend # Mn       KHMER SIGN COENG

0903          ; SpacingMark # Mc       DEVANAGARI SIGN VISARGA
093E..0940    ; SpacingMark # Mc   [3] DEVANAGARI VOWEL SIGN AA..DEVANAGARI VOWEL SIGN II
0949..094C    ; SpacingMark # Mc   [4] DEVANAGARI VOWEL SIGN CANDRA O..DEVANAGARI VOWEL SIGN AU
0BBE..0BBF    ; SpacingMark # Mc   [2] TAMIL VOWEL SIGN AA..TAMIL VOWEL SIGN I

1F1E6..1F1FF  ; Regional_Indicator # So [26] REGIONAL INDICATOR SYMBOL LETTER A..Z
`

func mustTables(t *testing.T) *Tables {
	t.Helper()
	tables, err := BuildTables(testSpec)
	if err != nil {
		t.Fatalf("BuildTables failed: %v", err)
	}
	return tables
}

func TestBuildTables_Categories(t *testing.T) {
	tables := mustTables(t)

	tests := []struct {
		name  string
		table *unicode.RangeTable
		r     rune
		want  bool
	}{
		{"prepend start of range", tables.prepend, 0x0600, true},
		{"prepend end of range", tables.prepend, 0x0605, true},
		{"prepend single", tables.prepend, 0x06DD, true},
		{"prepend outside", tables.prepend, 0x0606, false},
		{"control", tables.control, 0x200B, true},
		{"extend combining", tables.extend, 0x0301, true},
		{"extend virama", tables.extend, 0x094D, true},
		{"extend zwj", tables.extend, 0x200D, true},
		{"spacing mark", tables.spacingMark, 0x0903, true},
		{"unrecognized category ignored", tables.extend, 0x1F1E6, false},
		{"plain letter in nothing", tables.extend, 'a', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unicode.Is(tt.table, tt.r); got != tt.want {
				t.Errorf("membership of %U = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestBuildTables_InternalMarkersInExtend(t *testing.T) {
	tables := mustTables(t)
	if !unicode.Is(tables.extend, markerExtendA) {
		t.Errorf("marker %U should be in Extend", rune(markerExtendA))
	}
	if !unicode.Is(tables.extend, markerExtendB) {
		t.Errorf("marker %U should be in Extend", rune(markerExtendB))
	}
}

func TestBuildTables_MalformedCodepoint(t *testing.T) {
	_, err := BuildTables("XYZZY ; Extend # broken\n")
	if err == nil {
		t.Fatal("expected a parse error for a malformed codepoint field")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if perr.Line != 1 {
		t.Errorf("ParseError.Line = %d, want 1", perr.Line)
	}
}

func TestBuildTables_InvertedRange(t *testing.T) {
	_, err := BuildTables("0400..0300 ; Extend\n")
	if err == nil {
		t.Fatal("expected a parse error for an inverted range")
	}
}

func TestBuildTables_EmptySpec(t *testing.T) {
	tables, err := BuildTables("")
	if err != nil {
		t.Fatalf("BuildTables(\"\") failed: %v", err)
	}
	if unicode.Is(tables.extend, 0x0301) {
		t.Error("empty spec should produce empty parsed sets")
	}
	// Curated sets are independent of the parsed specification.
	if !unicode.Is(tables.virama, 0x094D) {
		t.Error("curated virama set should be populated")
	}
}

func TestCuratedSets(t *testing.T) {
	tables := mustTables(t)

	if !unicode.Is(tables.virama, 0x0DCA) {
		t.Error("Sinhala al-lakuna should be a virama")
	}
	if !unicode.Is(tables.invisibleStacker, 0x17D2) {
		t.Error("Khmer coeng should be an invisible stacker")
	}
	if !unicode.Is(tables.exceptions, 0x0BD7) {
		t.Error("Tamil au length mark should be an exception")
	}
	if !unicode.Is(tables.consonants, 0x0915) {
		t.Error("Devanagari ka should be a consonant")
	}
	if unicode.Is(tables.consonants, 0x093E) {
		t.Error("Devanagari vowel sign aa should not be a consonant")
	}
}

func TestLocalBlock(t *testing.T) {
	tables := mustTables(t)

	tests := []struct {
		name      string
		r         rune
		wantBlock string
		wantDense bool
		wantOK    bool
	}{
		{"devanagari", 0x0915, "Devanagari", false, true},
		{"tamil", 0x0B95, "Tamil", false, true},
		{"cjk ideograph", 0x4F60, "CJK Unified Ideographs", true, true},
		{"hangul", 0xAC00, "Hangul Syllables", true, true},
		{"hiragana", 0x3042, "Hiragana", true, true},
		{"latin", 'A', "", false, false},
		{"arabic", 0x0627, "", false, false},
		{"astral ideograph", 0x20000, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ok := tables.LocalBlock(tt.r)
			if ok != tt.wantOK {
				t.Fatalf("LocalBlock(%U) ok = %v, want %v", tt.r, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if block.Name != tt.wantBlock {
				t.Errorf("block = %q, want %q", block.Name, tt.wantBlock)
			}
			if block.Dense != tt.wantDense {
				t.Errorf("dense = %v, want %v", block.Dense, tt.wantDense)
			}
		})
	}
}
