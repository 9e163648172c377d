package codec

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF

	// First codepoint that needs a surrogate pair.
	supplementaryMin = 0x10000
)

// IsHighSurrogate reports whether u is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= highSurrogateMin && u <= highSurrogateMax
}

// IsLowSurrogate reports whether u is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= lowSurrogateMin && u <= lowSurrogateMax
}

// DecodeUTF16 decodes the first codepoint in p, validating as it goes.
// A non-surrogate unit decodes to itself. A high surrogate must be
// immediately followed by a low surrogate; the pair combines into a
// supplementary codepoint with size 2. Any isolated surrogate returns
// (RuneError, 1, false); empty input returns (RuneError, 0, false).
func DecodeUTF16(p []uint16) (r rune, size int, ok bool) {
	if len(p) == 0 {
		return RuneError, 0, false
	}

	u := p[0]
	if u < highSurrogateMin || u > lowSurrogateMax {
		return rune(u), 1, true
	}
	if u > highSurrogateMax || len(p) < 2 {
		// Lone low surrogate, or high surrogate at end of input.
		return RuneError, 1, false
	}
	u2 := p[1]
	if !IsLowSurrogate(u2) {
		return RuneError, 1, false
	}
	r = supplementaryMin + rune(u-highSurrogateMin)<<10 + rune(u2-lowSurrogateMin)
	return r, 2, true
}

// AppendUTF16 appends the UTF-16 encoding of r to dst. The caller must
// pass a valid scalar value; see ValidRune.
func AppendUTF16(dst []uint16, r rune) []uint16 {
	if r < supplementaryMin {
		return append(dst, uint16(r))
	}
	r -= supplementaryMin
	return append(dst,
		uint16(highSurrogateMin+r>>10),
		uint16(lowSurrogateMin+r&0x3FF))
}

// UTF16Len returns the number of code units AppendUTF16 writes for r.
func UTF16Len(r rune) int {
	if r < supplementaryMin {
		return 1
	}
	return 2
}
