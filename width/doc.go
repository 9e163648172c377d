// Package width computes the terminal column width of Unicode text.
//
// The model is the classic East Asian Width scheme of POSIX wcwidth,
// frozen at Unicode 5.0, with patches for modern emoji: pictographic
// planes are two columns wide, skin tones and joiners are zero width,
// and ZWJ-joined emoji coalesce into a single two-column cluster.
//
//	width.String("Hello, World!")  // 13
//	width.String("中国人")          // 6
//	width.String("👨‍👩‍👧‍👦")        // 2
//
// Strings containing C0/C1 control characters have no defined column
// width; String and Runes return -1 for them, and Measure reports the
// offending codepoint as a structured error.
//
// Width is a rendering approximation for monospace terminals, not a
// font metric, and the lookup tables are a deliberate snapshot; see
// the table comments in tables.go.
package width
