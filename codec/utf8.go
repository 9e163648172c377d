package codec

// Unicode scalar range bounds and the replacement character in its
// three canonical encodings.
const (
	MaxRune   = '\U0010FFFF' // maximum valid codepoint
	RuneError = '�'     // replacement character U+FFFD

	ReplacementUTF8  = "\xEF\xBF\xBD" // U+FFFD in UTF-8
	ReplacementUTF16 = uint16(0xFFFD) // U+FFFD in UTF-16
	ReplacementUTF32 = rune(0xFFFD)   // U+FFFD in UTF-32

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

const (
	maskx = 0x3F // continuation byte payload
	tx    = 0x80 // continuation byte marker 10xxxxxx
	t2    = 0xC0 // 2-byte lead marker 110xxxxx
	t3    = 0xE0 // 3-byte lead marker 1110xxxx
	t4    = 0xF0 // 4-byte lead marker 11110xxx
)

// ValidRune reports whether r is a Unicode scalar value: within
// [0, U+10FFFF] and outside the surrogate range.
func ValidRune(r rune) bool {
	return r >= 0 && r <= MaxRune && !IsSurrogate(r)
}

// IsSurrogate reports whether r lies in the UTF-16 surrogate range.
func IsSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

func isContinuation(b byte) bool {
	return b&0xC0 == tx
}

// DecodeUTF8 decodes the first codepoint in p, validating as it goes.
// On a well-formed sequence it returns the codepoint and the number of
// bytes consumed with ok true. On a defect it returns (RuneError, 1,
// false); on empty input (RuneError, 0, false).
func DecodeUTF8(p []byte) (r rune, size int, ok bool) {
	if len(p) == 0 {
		return RuneError, 0, false
	}

	c := p[0]
	switch {
	case c < 0x80: // 0xxxxxxx
		return rune(c), 1, true

	case c < 0xC2: // continuation byte or overlong lead C0/C1
		return RuneError, 1, false

	case c < t3: // 110xxxxx 10xxxxxx
		if len(p) < 2 || !isContinuation(p[1]) {
			return RuneError, 1, false
		}
		r = rune(c&0x1F)<<6 | rune(p[1]&maskx)
		if r < 0x80 {
			return RuneError, 1, false // overlong
		}
		return r, 2, true

	case c < t4: // 1110xxxx 10xxxxxx 10xxxxxx
		if len(p) < 3 || !isContinuation(p[1]) || !isContinuation(p[2]) {
			return RuneError, 1, false
		}
		r = rune(c&0x0F)<<12 | rune(p[1]&maskx)<<6 | rune(p[2]&maskx)
		if r < 0x800 {
			return RuneError, 1, false // overlong
		}
		if IsSurrogate(r) {
			return RuneError, 1, false
		}
		return r, 3, true

	case c < 0xF5: // 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
		if len(p) < 4 || !isContinuation(p[1]) || !isContinuation(p[2]) || !isContinuation(p[3]) {
			return RuneError, 1, false
		}
		r = rune(c&0x07)<<18 | rune(p[1]&maskx)<<12 | rune(p[2]&maskx)<<6 | rune(p[3]&maskx)
		if r < 0x10000 {
			return RuneError, 1, false // overlong
		}
		if r > MaxRune {
			return RuneError, 1, false
		}
		return r, 4, true
	}

	// F5..FF can never start a scalar value
	return RuneError, 1, false
}

// AppendUTF8 appends the UTF-8 encoding of r to dst. The caller must
// pass a valid scalar value; see ValidRune.
func AppendUTF8(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, t2|byte(r>>6), tx|byte(r)&maskx)
	case r < 0x10000:
		return append(dst, t3|byte(r>>12), tx|byte(r>>6)&maskx, tx|byte(r)&maskx)
	default:
		return append(dst, t4|byte(r>>18), tx|byte(r>>12)&maskx, tx|byte(r>>6)&maskx, tx|byte(r)&maskx)
	}
}

// UTF8Len returns the number of bytes AppendUTF8 writes for r.
func UTF8Len(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
