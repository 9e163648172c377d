package width_test

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/uniconv/convert"
	"github.com/wippyai/uniconv/errors"
	"github.com/wippyai/uniconv/width"
)

var widthStrings = []struct {
	text string
	want int
}{
	{"", 0},
	{"Hello, World!", 13},
	{"Résumé", 6},
	{"😂😂😂", 6},
	{"👨‍👩‍👧‍👦", 2},
	{"中国人", 6},
	{"한국어", 6},
	{"ｆｕｌｌ", 8},
	{"à", 1},             // combining grave adds nothing
	{"éé", 2},      // two combining pairs
	{"가", 2},        // Jamo L + V: only the lead is wide
	{"­x", 2},             // soft hyphen keeps width 1
	{"☂", 1},                   // 2600..27BF starter, narrow by table
	{"☂️", 1},             // VS-16 adds nothing
	{"👍🏽", 2},                   // thumbs up + skin tone
	{"🏴󠁧󠁢󠁳󠁣󠁴󠁿", 2},                   // tag sequence flag
	{"👩‍🚀", 2},                  // ZWJ-joined pair
	{"😂+😂", 5},                 // starter, non-modifier, starter
	{"‍", 0},              // lone ZWJ
	{"�", 1},              // replacement char
	{"\U0001FA70", 2},          // extended pictographs
	{"\U00020000\U00030000", 4}, // supplementary CJK
}

func TestStringWidth(t *testing.T) {
	for _, tt := range widthStrings {
		if got := width.String(tt.text); got != tt.want {
			t.Errorf("String(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

// Width must not depend on which encoding the text arrives in.
func TestWidthAcrossEncodings(t *testing.T) {
	for _, tt := range widthStrings {
		u16, _ := convert.UTF8ToUTF16([]byte(tt.text), convert.StopOnFirstError)
		if got := width.UTF16(u16); got != tt.want {
			t.Errorf("UTF16(%q) = %d, want %d", tt.text, got, tt.want)
		}
		u32, _ := convert.UTF8ToUTF32([]byte(tt.text), convert.StopOnFirstError)
		if got := width.Runes(u32); got != tt.want {
			t.Errorf("Runes(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{0x0000, 0},
		{0x0001, -1},
		{0x001F, -1},
		{' ', 1},
		{'A', 1},
		{0x007E, 1},
		{0x007F, -1}, // DEL
		{0x009F, -1}, // C1
		{0x00A0, 1},
		{0x00AD, 1}, // soft hyphen is spacing
		{0x0300, 0},
		{0x200B, 0},
		{0x200D, 0}, // ZWJ
		{0xFE0F, 0}, // VS-16
		{0xFEFF, 0}, // BOM
		{0x1100, 2},
		{0x115F, 2},
		{0x1160, 0}, // Jamo medial, combining
		{0x2329, 2},
		{0x303F, 1}, // carved out of the CJK range
		{0x4E2D, 2},
		{0xAC00, 2},
		{0xFF21, 2},
		{0x1F3FB, 0}, // skin tone
		{0x1F602, 2},
		{0x1FAFF, 2},
		{0x20000, 2},
		{0x2FFFD, 2},
		{0x2FFFE, 1},
		{0xE0020, 0}, // tag char
		{0xE01EF, 0},
		{0x10A01, 0},
	}
	for _, tt := range tests {
		if got := width.Rune(tt.r); got != tt.want {
			t.Errorf("Rune(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestControlCharacters(t *testing.T) {
	for _, s := range []string{"\x1B[0m", "a\tb", "xy", "\x7F"} {
		if got := width.String(s); got != -1 {
			t.Errorf("String(%q) = %d, want -1", s, got)
		}
	}
}

func TestMeasure(t *testing.T) {
	w, err := width.Measure("Résumé")
	if err != nil || w != 6 {
		t.Errorf("Measure clean = (%d, %v)", w, err)
	}

	w, err = width.Measure("ab\x1Bcd")
	if w != -1 || err == nil {
		t.Fatalf("Measure control = (%d, %v), want error", w, err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type %T", err)
	}
	if e.Kind != errors.KindControlChar || e.Rune != 0x1B || e.Offset != 2 {
		t.Errorf("got %s rune %#x at %d", e.Kind, e.Rune, e.Offset)
	}
}

// Malformed input is dropped (SkipInvalid) before measuring, matching
// the convenience contract.
func TestWidthSkipsMalformed(t *testing.T) {
	if got := width.String("ab\xC0\xAFcd"); got != 4 {
		t.Errorf("String with malformed bytes = %d, want 4", got)
	}
	if got := width.UTF16([]uint16{'a', 0xD800, 'b'}); got != 2 {
		t.Errorf("UTF16 with lone surrogate = %d, want 2", got)
	}
}

func TestZWJSequences(t *testing.T) {
	// ZWJ followed by a non-starter: the joiner is skipped, the
	// following codepoint is measured on its own.
	s := []rune{0x1F602, 0x200D, 'x'}
	if got := width.Runes(s); got != 3 {
		t.Errorf("emoji ZWJ letter = %d, want 3", got)
	}

	// ZWJ at end of input.
	s = []rune{0x1F602, 0x200D}
	if got := width.Runes(s); got != 2 {
		t.Errorf("trailing ZWJ = %d, want 2", got)
	}

	// Joined starters keep swallowing their own modifiers.
	s = []rune{0x1F468, 0x1F3FB, 0x200D, 0x1F469, 0x1F3FC}
	if got := width.Runes(s); got != 2 {
		t.Errorf("skin-toned family = %d, want 2", got)
	}
}
