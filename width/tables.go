package width

import (
	"github.com/wippyai/uniconv/width/internal/intervals"
)

// The tables below are a frozen Unicode 5.0 snapshot (Markus Kuhn's
// wcwidth data) with emoji-era patches: skin-tone modifiers are
// zero-width and the emoji/pictographic planes are double-width.
// They are the single source of truth for the width rules.

// combining holds codepoints of column width zero: non-spacing and
// enclosing marks (Mn/Me), format characters (Cf) except U+00AD,
// Hangul Jamo medial vowels and final consonants, the BOM, variation
// selectors, tag characters, skin-tone modifiers, and the ZWJ (inside
// U+200B..U+200F).
var combining = intervals.Table{
	{Lo: 0x0300, Hi: 0x036F},
	{Lo: 0x0483, Hi: 0x0486},
	{Lo: 0x0488, Hi: 0x0489},
	{Lo: 0x0591, Hi: 0x05BD},
	{Lo: 0x05BF, Hi: 0x05BF},
	{Lo: 0x05C1, Hi: 0x05C2},
	{Lo: 0x05C4, Hi: 0x05C5},
	{Lo: 0x05C7, Hi: 0x05C7},
	{Lo: 0x0600, Hi: 0x0603},
	{Lo: 0x0610, Hi: 0x0615},
	{Lo: 0x064B, Hi: 0x065E},
	{Lo: 0x0670, Hi: 0x0670},
	{Lo: 0x06D6, Hi: 0x06E4},
	{Lo: 0x06E7, Hi: 0x06E8},
	{Lo: 0x06EA, Hi: 0x06ED},
	{Lo: 0x070F, Hi: 0x070F},
	{Lo: 0x0711, Hi: 0x0711},
	{Lo: 0x0730, Hi: 0x074A},
	{Lo: 0x07A6, Hi: 0x07B0},
	{Lo: 0x07EB, Hi: 0x07F3},
	{Lo: 0x0901, Hi: 0x0902},
	{Lo: 0x093C, Hi: 0x093C},
	{Lo: 0x0941, Hi: 0x0948},
	{Lo: 0x094D, Hi: 0x094D},
	{Lo: 0x0951, Hi: 0x0954},
	{Lo: 0x0962, Hi: 0x0963},
	{Lo: 0x0981, Hi: 0x0981},
	{Lo: 0x09BC, Hi: 0x09BC},
	{Lo: 0x09C1, Hi: 0x09C4},
	{Lo: 0x09CD, Hi: 0x09CD},
	{Lo: 0x09E2, Hi: 0x09E3},
	{Lo: 0x0A01, Hi: 0x0A02},
	{Lo: 0x0A3C, Hi: 0x0A3C},
	{Lo: 0x0A41, Hi: 0x0A42},
	{Lo: 0x0A47, Hi: 0x0A48},
	{Lo: 0x0A4B, Hi: 0x0A4D},
	{Lo: 0x0A70, Hi: 0x0A71},
	{Lo: 0x0A81, Hi: 0x0A82},
	{Lo: 0x0ABC, Hi: 0x0ABC},
	{Lo: 0x0AC1, Hi: 0x0AC5},
	{Lo: 0x0AC7, Hi: 0x0AC8},
	{Lo: 0x0ACD, Hi: 0x0ACD},
	{Lo: 0x0AE2, Hi: 0x0AE3},
	{Lo: 0x0B01, Hi: 0x0B01},
	{Lo: 0x0B3C, Hi: 0x0B3C},
	{Lo: 0x0B3F, Hi: 0x0B3F},
	{Lo: 0x0B41, Hi: 0x0B43},
	{Lo: 0x0B4D, Hi: 0x0B4D},
	{Lo: 0x0B56, Hi: 0x0B56},
	{Lo: 0x0B82, Hi: 0x0B82},
	{Lo: 0x0BC0, Hi: 0x0BC0},
	{Lo: 0x0BCD, Hi: 0x0BCD},
	{Lo: 0x0C3E, Hi: 0x0C40},
	{Lo: 0x0C46, Hi: 0x0C48},
	{Lo: 0x0C4A, Hi: 0x0C4D},
	{Lo: 0x0C55, Hi: 0x0C56},
	{Lo: 0x0CBC, Hi: 0x0CBC},
	{Lo: 0x0CBF, Hi: 0x0CBF},
	{Lo: 0x0CC6, Hi: 0x0CC6},
	{Lo: 0x0CCC, Hi: 0x0CCD},
	{Lo: 0x0CE2, Hi: 0x0CE3},
	{Lo: 0x0D41, Hi: 0x0D43},
	{Lo: 0x0D4D, Hi: 0x0D4D},
	{Lo: 0x0DCA, Hi: 0x0DCA},
	{Lo: 0x0DD2, Hi: 0x0DD4},
	{Lo: 0x0DD6, Hi: 0x0DD6},
	{Lo: 0x0E31, Hi: 0x0E31},
	{Lo: 0x0E34, Hi: 0x0E3A},
	{Lo: 0x0E47, Hi: 0x0E4E},
	{Lo: 0x0EB1, Hi: 0x0EB1},
	{Lo: 0x0EB4, Hi: 0x0EB9},
	{Lo: 0x0EBB, Hi: 0x0EBC},
	{Lo: 0x0EC8, Hi: 0x0ECD},
	{Lo: 0x0F18, Hi: 0x0F19},
	{Lo: 0x0F35, Hi: 0x0F35},
	{Lo: 0x0F37, Hi: 0x0F37},
	{Lo: 0x0F39, Hi: 0x0F39},
	{Lo: 0x0F71, Hi: 0x0F7E},
	{Lo: 0x0F80, Hi: 0x0F84},
	{Lo: 0x0F86, Hi: 0x0F87},
	{Lo: 0x0F90, Hi: 0x0F97},
	{Lo: 0x0F99, Hi: 0x0FBC},
	{Lo: 0x0FC6, Hi: 0x0FC6},
	{Lo: 0x102D, Hi: 0x1030},
	{Lo: 0x1032, Hi: 0x1032},
	{Lo: 0x1036, Hi: 0x1037},
	{Lo: 0x1039, Hi: 0x1039},
	{Lo: 0x1058, Hi: 0x1059},
	{Lo: 0x1160, Hi: 0x11FF},
	{Lo: 0x135F, Hi: 0x135F},
	{Lo: 0x1712, Hi: 0x1714},
	{Lo: 0x1732, Hi: 0x1734},
	{Lo: 0x1752, Hi: 0x1753},
	{Lo: 0x1772, Hi: 0x1773},
	{Lo: 0x17B4, Hi: 0x17B5},
	{Lo: 0x17B7, Hi: 0x17BD},
	{Lo: 0x17C6, Hi: 0x17C6},
	{Lo: 0x17C9, Hi: 0x17D3},
	{Lo: 0x17DD, Hi: 0x17DD},
	{Lo: 0x180B, Hi: 0x180D},
	{Lo: 0x18A9, Hi: 0x18A9},
	{Lo: 0x1920, Hi: 0x1922},
	{Lo: 0x1927, Hi: 0x1928},
	{Lo: 0x1932, Hi: 0x1932},
	{Lo: 0x1939, Hi: 0x193B},
	{Lo: 0x1A17, Hi: 0x1A18},
	{Lo: 0x1B00, Hi: 0x1B03},
	{Lo: 0x1B34, Hi: 0x1B34},
	{Lo: 0x1B36, Hi: 0x1B3A},
	{Lo: 0x1B3C, Hi: 0x1B3C},
	{Lo: 0x1B42, Hi: 0x1B42},
	{Lo: 0x1B6B, Hi: 0x1B73},
	{Lo: 0x1DC0, Hi: 0x1DCA},
	{Lo: 0x1DFE, Hi: 0x1DFF},
	{Lo: 0x200B, Hi: 0x200F}, // includes the ZWJ U+200D
	{Lo: 0x202A, Hi: 0x202E},
	{Lo: 0x2060, Hi: 0x2063},
	{Lo: 0x206A, Hi: 0x206F},
	{Lo: 0x20D0, Hi: 0x20EF},
	{Lo: 0x302A, Hi: 0x302F},
	{Lo: 0x3099, Hi: 0x309A},
	{Lo: 0xA806, Hi: 0xA806},
	{Lo: 0xA80B, Hi: 0xA80B},
	{Lo: 0xA825, Hi: 0xA826},
	{Lo: 0xFB1E, Hi: 0xFB1E},
	{Lo: 0xFE00, Hi: 0xFE0F}, // variation selectors, includes VS-16
	{Lo: 0xFE20, Hi: 0xFE23},
	{Lo: 0xFEFF, Hi: 0xFEFF}, // BOM
	{Lo: 0xFFF9, Hi: 0xFFFB},
	{Lo: 0x10A01, Hi: 0x10A03},
	{Lo: 0x10A05, Hi: 0x10A06},
	{Lo: 0x10A0C, Hi: 0x10A0F},
	{Lo: 0x10A38, Hi: 0x10A3A},
	{Lo: 0x10A3F, Hi: 0x10A3F},
	{Lo: 0x1D167, Hi: 0x1D169},
	{Lo: 0x1D173, Hi: 0x1D182},
	{Lo: 0x1D185, Hi: 0x1D18B},
	{Lo: 0x1D1AA, Hi: 0x1D1AD},
	{Lo: 0x1D242, Hi: 0x1D244},
	{Lo: 0x1F3FB, Hi: 0x1F3FF}, // emoji skin-tone modifiers
	{Lo: 0xE0001, Hi: 0xE0001},
	{Lo: 0xE0020, Hi: 0xE007F}, // tag characters
	{Lo: 0xE0100, Hi: 0xE01EF},
}

// doubleWidth holds codepoints rendered at two columns: East Asian
// Wide and Fullwidth blocks plus the emoji and pictographic planes.
// U+303F falls in a gap between the first two CJK ranges.
var doubleWidth = intervals.Table{
	{Lo: 0x1100, Hi: 0x115F}, // Hangul Jamo initial consonants
	{Lo: 0x2329, Hi: 0x232A},
	{Lo: 0x2E80, Hi: 0x303E}, // CJK ... Yi, first half
	{Lo: 0x3040, Hi: 0xA4CF}, // CJK ... Yi, second half
	{Lo: 0xAC00, Hi: 0xD7A3}, // Hangul syllables
	{Lo: 0xF900, Hi: 0xFAFF}, // CJK compatibility ideographs
	{Lo: 0xFE10, Hi: 0xFE19}, // vertical forms
	{Lo: 0xFE30, Hi: 0xFE6F}, // CJK compatibility forms
	{Lo: 0xFF00, Hi: 0xFF60}, // fullwidth forms
	{Lo: 0xFFE0, Hi: 0xFFE6},
	{Lo: 0x1F000, Hi: 0x1F9FF}, // emoji and various symbols
	{Lo: 0x1FA00, Hi: 0x1FA6F}, // chess symbols and others
	{Lo: 0x1FA70, Hi: 0x1FAFF}, // symbols and pictographs extended-A
	{Lo: 0x20000, Hi: 0x2FFFD}, // supplementary CJK
	{Lo: 0x30000, Hi: 0x3FFFD},
}

// Emoji cluster codepoints.
const (
	zwj  = 0x200D
	vs16 = 0xFE0F

	skinToneMin = 0x1F3FB
	skinToneMax = 0x1F3FF

	tagMin = 0xE0020
	tagMax = 0xE007F
)

// isClusterStarter reports whether r may begin a ZWJ-joined emoji
// sequence.
func isClusterStarter(r rune) bool {
	return (r >= 0x1F000 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF)
}

// isClusterModifier reports whether r extends an emoji cluster without
// adding columns.
func isClusterModifier(r rune) bool {
	return (r >= skinToneMin && r <= skinToneMax) ||
		r == zwj || r == vs16 ||
		(r >= tagMin && r <= tagMax)
}

func init() {
	if err := combining.Validate(); err != nil {
		panic("width: combining table: " + err.Error())
	}
	if err := doubleWidth.Validate(); err != nil {
		panic("width: double-width table: " + err.Error())
	}
}
