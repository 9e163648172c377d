package convert

import (
	"github.com/wippyai/uniconv/codec"
	"github.com/wippyai/uniconv/errors"
)

// ValidateUTF8 walks src with the validating decoder and returns a
// structured error describing the first defect, or nil if src is
// well-formed. Identity copies never validate, so this is the explicit
// path for callers that need the answer.
func ValidateUTF8(src []byte) error {
	for i := 0; i < len(src); {
		_, size, ok := codec.DecodeUTF8(src[i:])
		if !ok {
			return errors.MalformedSequence(errors.PhaseValidate, "utf-8", i)
		}
		i += size
	}
	return nil
}

// ValidateUTF16 reports the first isolated surrogate in src, or nil.
func ValidateUTF16(src []uint16) error {
	for i := 0; i < len(src); {
		_, size, ok := codec.DecodeUTF16(src[i:])
		if !ok {
			return errors.LoneSurrogate(errors.PhaseValidate, i, src[i])
		}
		i += size
	}
	return nil
}

// ValidateUTF32 reports the first unit of src that is not a Unicode
// scalar value, or nil.
func ValidateUTF32(src []rune) error {
	for i, r := range src {
		if !codec.ValidRune(r) {
			return errors.InvalidCodepoint(errors.PhaseValidate, i, r)
		}
	}
	return nil
}
