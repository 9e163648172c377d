package width

import (
	"github.com/wippyai/uniconv/convert"
	"github.com/wippyai/uniconv/errors"
)

// Rune returns the column width of a single codepoint:
//
//	 0  for U+0000, combining marks, and other zero-width codepoints
//	-1  for C0/C1 control characters and DEL
//	 2  for East Asian Wide/Fullwidth codepoints and emoji
//	 1  for everything else
func Rune(r rune) int {
	if r == 0 {
		return 0
	}
	if r < 0x20 || (r >= 0x7F && r < 0xA0) {
		return -1
	}
	if combining.Contains(r) {
		return 0
	}
	if doubleWidth.Contains(r) {
		return 2
	}
	return 1
}

// Runes returns the column width of a codepoint sequence, or -1 if the
// sequence contains a C0/C1 control character.
//
// Emoji clusters are coalesced: after a cluster starter, skin tones,
// VS-16, tag characters, and the ZWJ are consumed in place, and an
// emoji joined by a ZWJ contributes no width of its own. A family
// sequence therefore measures as one two-column cluster.
func Runes(s []rune) int {
	w, err := measure(s)
	if err != nil {
		return -1
	}
	return w
}

// String returns the column width of a Go (UTF-8) string. Malformed
// bytes are dropped before measuring; a C0/C1 control yields -1.
func String(s string) int {
	u32, _ := convert.UTF8ToUTF32([]byte(s), convert.SkipInvalid)
	return Runes(u32)
}

// UTF16 returns the column width of a UTF-16 sequence. Isolated
// surrogates are dropped before measuring.
func UTF16(s []uint16) int {
	u32, _ := convert.UTF16ToUTF32(s, convert.SkipInvalid)
	return Runes(u32)
}

// Measure is like String but reports the offending control character
// as a structured error instead of -1.
func Measure(s string) (int, error) {
	u32, _ := convert.UTF8ToUTF32([]byte(s), convert.SkipInvalid)
	w, err := measure(u32)
	if err != nil {
		return -1, err
	}
	return w, nil
}

func measure(s []rune) (int, *errors.Error) {
	width := 0
	for i := 0; i < len(s); {
		c := s[i]
		cw := Rune(c)
		if cw < 0 {
			return 0, errors.ControlChar(i, c)
		}
		width += cw
		i++

		if !isClusterStarter(c) {
			continue
		}

		// Emoji continuation: swallow modifiers, and after a ZWJ
		// swallow a joined starter without counting its columns.
		for i < len(s) && isClusterModifier(s[i]) {
			if s[i] == zwj && i+1 < len(s) && isClusterStarter(s[i+1]) {
				i += 2
				continue
			}
			i++
		}
	}
	return width, nil
}
