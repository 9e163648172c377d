package convert

import (
	"github.com/wippyai/uniconv/codec"
)

// UTF8ToUTF16 transcodes a UTF-8 byte sequence to UTF-16 code units.
// The returned flag is false if any defect was found in src.
func UTF8ToUTF16(src []byte, policy Policy) ([]uint16, bool) {
	valid := true
	out := make([]uint16, 0, len(src))
	for i := 0; i < len(src); {
		r, size, ok := codec.DecodeUTF8(src[i:])
		if ok {
			out = codec.AppendUTF16(out, r)
		} else {
			valid = false
			debugf("invalid utf-8 sequence at %d (policy %s)", i, policy)
			switch policy {
			case SkipInvalid:
			case StopOnFirstError:
				return out, false
			default:
				out = append(out, codec.ReplacementUTF16)
			}
		}
		i += size
	}
	return out, valid
}

// UTF8ToUTF32 transcodes a UTF-8 byte sequence to UTF-32 code units.
func UTF8ToUTF32(src []byte, policy Policy) ([]rune, bool) {
	valid := true
	out := make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		r, size, ok := codec.DecodeUTF8(src[i:])
		if ok {
			out = append(out, r)
		} else {
			valid = false
			debugf("invalid utf-8 sequence at %d (policy %s)", i, policy)
			switch policy {
			case SkipInvalid:
			case StopOnFirstError:
				return out, false
			default:
				out = append(out, codec.ReplacementUTF32)
			}
		}
		i += size
	}
	return out, valid
}

// UTF16ToUTF8 transcodes UTF-16 code units to a UTF-8 byte sequence.
func UTF16ToUTF8(src []uint16, policy Policy) ([]byte, bool) {
	valid := true
	out := make([]byte, 0, 3*len(src))
	for i := 0; i < len(src); {
		r, size, ok := codec.DecodeUTF16(src[i:])
		if ok {
			out = codec.AppendUTF8(out, r)
		} else {
			valid = false
			debugf("isolated surrogate at %d (policy %s)", i, policy)
			switch policy {
			case SkipInvalid:
			case StopOnFirstError:
				return out, false
			default:
				out = append(out, codec.ReplacementUTF8...)
			}
		}
		i += size
	}
	return out, valid
}

// UTF16ToUTF32 transcodes UTF-16 code units to UTF-32 code units.
func UTF16ToUTF32(src []uint16, policy Policy) ([]rune, bool) {
	valid := true
	out := make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		r, size, ok := codec.DecodeUTF16(src[i:])
		if ok {
			out = append(out, r)
		} else {
			valid = false
			debugf("isolated surrogate at %d (policy %s)", i, policy)
			switch policy {
			case SkipInvalid:
			case StopOnFirstError:
				return out, false
			default:
				out = append(out, codec.ReplacementUTF32)
			}
		}
		i += size
	}
	return out, valid
}

// UTF32ToUTF8 transcodes UTF-32 code units to a UTF-8 byte sequence.
func UTF32ToUTF8(src []rune, policy Policy) ([]byte, bool) {
	valid := true
	out := make([]byte, 0, 4*len(src))
	for i, r := range src {
		if codec.ValidRune(r) {
			out = codec.AppendUTF8(out, r)
		} else {
			valid = false
			debugf("invalid codepoint %#x at %d (policy %s)", r, i, policy)
			switch policy {
			case SkipInvalid:
			case StopOnFirstError:
				return out, false
			default:
				out = append(out, codec.ReplacementUTF8...)
			}
		}
	}
	return out, valid
}

// UTF32ToUTF16 transcodes UTF-32 code units to UTF-16 code units.
func UTF32ToUTF16(src []rune, policy Policy) ([]uint16, bool) {
	valid := true
	out := make([]uint16, 0, 2*len(src))
	for i, r := range src {
		if codec.ValidRune(r) {
			out = codec.AppendUTF16(out, r)
		} else {
			valid = false
			debugf("invalid codepoint %#x at %d (policy %s)", r, i, policy)
			switch policy {
			case SkipInvalid:
			case StopOnFirstError:
				return out, false
			default:
				out = append(out, codec.ReplacementUTF16)
			}
		}
	}
	return out, valid
}

// UTF8ToUTF8 copies src without validation. Same-encoding conversions
// always report valid; see the package documentation.
func UTF8ToUTF8(src []byte, _ Policy) ([]byte, bool) {
	out := make([]byte, len(src))
	copy(out, src)
	return out, true
}

// UTF16ToUTF16 copies src without validation.
func UTF16ToUTF16(src []uint16, _ Policy) ([]uint16, bool) {
	out := make([]uint16, len(src))
	copy(out, src)
	return out, true
}

// UTF32ToUTF32 copies src without validation.
func UTF32ToUTF32(src []rune, _ Policy) ([]rune, bool) {
	out := make([]rune, len(src))
	copy(out, src)
	return out, true
}
