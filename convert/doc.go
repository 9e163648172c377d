// Package convert transcodes text between UTF-8, UTF-16, and UTF-32
// with selectable behavior on malformed input.
//
// # Conversion Flow
//
// Every distinct-encoding conversion streams through the same pipeline:
//
//	source units → [decode one] → codepoint → [encode one] → output
//
// One codepoint is decoded, optionally encoded, and the input cursor
// advances; no state is carried between calls. On a defect the decoder
// advances by exactly one unit and the Policy decides what happens:
//
//	ReplaceInvalid    emit U+FFFD for the defect and continue
//	SkipInvalid       emit nothing for the defect and continue
//	StopOnFirstError  return the output produced so far
//
// Each operation returns the produced sequence plus a single validity
// flag; the flag is false as soon as any defect was seen, regardless
// of policy.
//
// # Identity Copies
//
// Same-encoding conversions (UTF8ToUTF8 and friends) are structural
// copies. They do not validate and always report valid, even for
// malformed input. Callers that need validation should use
// ValidateUTF8, ValidateUTF16, or ValidateUTF32, which report the
// first defect as a structured error.
//
// # Routing
//
// Transcode routes a Sequence to a target Encoding: an identity pair
// copies, a distinct pair runs the pipeline above. Go strings are
// UTF-8 and convert through the []byte operations directly. The
// platform wide-character alias (WideChar) is a bit-identical view of
// UTF-16 on Windows and UTF-32 elsewhere; the WideTo and ToWide
// functions reinterpret and run the normal pipeline, so the core never
// branches on the host wide size.
//
// # Thread Safety
//
// All functions are pure: they share only immutable data and may be
// called concurrently.
package convert
