package convert

// Encoding identifies one of the three Unicode encodings.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16
	UTF32
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	case UTF32:
		return "utf-32"
	default:
		return "unknown"
	}
}

// Sequence is a tagged Unicode sequence. Exactly one of the unit
// slices is meaningful, selected by Encoding.
type Sequence struct {
	Encoding Encoding
	Bytes    []byte   // UTF8
	Units    []uint16 // UTF16
	Runes    []rune   // UTF32
}

// UTF8Sequence wraps a UTF-8 byte slice.
func UTF8Sequence(b []byte) Sequence { return Sequence{Encoding: UTF8, Bytes: b} }

// UTF16Sequence wraps a UTF-16 code-unit slice.
func UTF16Sequence(u []uint16) Sequence { return Sequence{Encoding: UTF16, Units: u} }

// UTF32Sequence wraps a UTF-32 code-unit slice.
func UTF32Sequence(r []rune) Sequence { return Sequence{Encoding: UTF32, Runes: r} }

// StringSequence wraps a Go string, which is treated as UTF-8.
func StringSequence(s string) Sequence { return UTF8Sequence([]byte(s)) }

// Len returns the number of code units in the sequence.
func (s Sequence) Len() int {
	switch s.Encoding {
	case UTF16:
		return len(s.Units)
	case UTF32:
		return len(s.Runes)
	default:
		return len(s.Bytes)
	}
}

// Transcode routes src to the target encoding under the given policy.
// Identity pairs are structural copies that always report valid;
// distinct pairs run the validating decode-encode pipeline.
func Transcode(src Sequence, to Encoding, policy Policy) (Sequence, bool) {
	switch src.Encoding {
	case UTF8:
		switch to {
		case UTF16:
			out, ok := UTF8ToUTF16(src.Bytes, policy)
			return UTF16Sequence(out), ok
		case UTF32:
			out, ok := UTF8ToUTF32(src.Bytes, policy)
			return UTF32Sequence(out), ok
		default:
			out, ok := UTF8ToUTF8(src.Bytes, policy)
			return UTF8Sequence(out), ok
		}
	case UTF16:
		switch to {
		case UTF8:
			out, ok := UTF16ToUTF8(src.Units, policy)
			return UTF8Sequence(out), ok
		case UTF32:
			out, ok := UTF16ToUTF32(src.Units, policy)
			return UTF32Sequence(out), ok
		default:
			out, ok := UTF16ToUTF16(src.Units, policy)
			return UTF16Sequence(out), ok
		}
	default:
		switch to {
		case UTF8:
			out, ok := UTF32ToUTF8(src.Runes, policy)
			return UTF8Sequence(out), ok
		case UTF16:
			out, ok := UTF32ToUTF16(src.Runes, policy)
			return UTF16Sequence(out), ok
		default:
			out, ok := UTF32ToUTF32(src.Runes, policy)
			return UTF32Sequence(out), ok
		}
	}
}
