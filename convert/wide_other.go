//go:build !windows

package convert

// WideChar is the host wide-character unit. On this platform it is
// 32 bits, so a wide sequence is a bit-identical view of UTF-32.
type WideChar = rune

// WideIsUTF16 reports whether the host wide unit is 16 bits.
const WideIsUTF16 = false

// WideEncoding is the Unicode encoding a wide sequence aliases.
const WideEncoding = UTF32

// WideToUTF8 transcodes a host wide sequence to UTF-8.
func WideToUTF8(src []WideChar, policy Policy) ([]byte, bool) {
	return UTF32ToUTF8(src, policy)
}

// WideToUTF16 transcodes a host wide sequence to UTF-16.
func WideToUTF16(src []WideChar, policy Policy) ([]uint16, bool) {
	return UTF32ToUTF16(src, policy)
}

// WideToUTF32 reinterprets a host wide sequence as UTF-32. The copy is
// structural and always valid, like any identity conversion.
func WideToUTF32(src []WideChar, policy Policy) ([]rune, bool) {
	return UTF32ToUTF32(src, policy)
}

// UTF8ToWide transcodes UTF-8 to the host wide encoding.
func UTF8ToWide(src []byte, policy Policy) ([]WideChar, bool) {
	return UTF8ToUTF32(src, policy)
}

// UTF16ToWide transcodes UTF-16 to the host wide encoding.
func UTF16ToWide(src []uint16, policy Policy) ([]WideChar, bool) {
	return UTF16ToUTF32(src, policy)
}

// UTF32ToWide reinterprets UTF-32 as the host wide encoding.
func UTF32ToWide(src []rune, policy Policy) ([]WideChar, bool) {
	return UTF32ToUTF32(src, policy)
}
