// Package codec provides unit-level Unicode encoding primitives.
//
// The package operates one codepoint at a time. Decoders validate as
// they go; encoders assume valid scalar values and are total on them.
//
// # Key Functions
//
//	DecodeUTF8   - Validating decode of one codepoint from a byte slice
//	DecodeUTF16  - Validating decode of one codepoint from a code-unit slice
//	AppendUTF8   - Append the UTF-8 form of a codepoint to a buffer
//	AppendUTF16  - Append the UTF-16 form of a codepoint to a buffer
//	ValidRune    - Scalar-value check for a UTF-32 unit
//
// # Decoding Contract
//
// Each decoder returns (r, size, ok). On a well-formed sequence, r is
// the decoded codepoint and size the number of input units consumed.
// On a defect, r is RuneError, size is exactly 1, and ok is false: the
// decoder always makes one unit of progress so a streaming caller
// never stalls. This advance-by-one scheme means a multi-unit defect
// (such as the overlong pair C0 AF) reports one defect per unit, not
// one per maximal ill-formed subsequence.
//
// # Validation Rules
//
// UTF-8 decoding rejects lead bytes C0, C1 and F5..FF, continuation
// bytes outside 80..BF, truncated sequences, overlong encodings,
// surrogate codepoints, and values above U+10FFFF. UTF-16 decoding
// rejects any isolated surrogate: a high surrogate must be immediately
// followed by a low surrogate.
//
// # Replacement Character
//
// The three canonical encodings of U+FFFD are exported so callers can
// splice them into their own buffers:
//
//	ReplacementUTF8   "\xEF\xBF\xBD"
//	ReplacementUTF16  0xFFFD
//	ReplacementUTF32  '�'
package codec
