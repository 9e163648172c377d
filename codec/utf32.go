package codec

// DecodeUTF32 reads the first unit of p and validates it as a scalar
// value. UTF-32 carries one codepoint per unit, so size is always 1 on
// non-empty input; a surrogate or out-of-range unit returns
// (RuneError, 1, false).
func DecodeUTF32(p []rune) (r rune, size int, ok bool) {
	if len(p) == 0 {
		return RuneError, 0, false
	}
	if !ValidRune(p[0]) {
		return RuneError, 1, false
	}
	return p[0], 1, true
}

// AppendUTF32 appends r to dst. The caller must pass a valid scalar
// value; see ValidRune.
func AppendUTF32(dst []rune, r rune) []rune {
	return append(dst, r)
}
