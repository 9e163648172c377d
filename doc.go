// Package uniconv provides Unicode transcoding between UTF-8, UTF-16,
// and UTF-32, and terminal column-width computation for Unicode text.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	uniconv/             Root package documentation
//	├── codec/           Unit-level validating decoders and encoders
//	├── convert/         Conversion engine, error policies, and routing
//	├── width/           Column width with emoji cluster coalescing
//	├── errors/          Structured error types for debugging
//	└── cmd/uniconv/     Command-line inspector and transcoder
//
// # Quick Start
//
// Transcode with an explicit policy:
//
//	u16, ok := convert.UTF8ToUTF16([]byte("Résumé"), convert.ReplaceInvalid)
//	if !ok {
//	    // the input contained malformed sequences
//	}
//
// Measure terminal columns:
//
//	width.String("中国人")   // 6
//	width.String("👨‍👩‍👧‍👦") // 2, one ZWJ-joined cluster
//
// # Error Policies
//
// Every conversion takes a Policy that selects what happens at a
// malformed source element: substitute U+FFFD (ReplaceInvalid), drop
// it (SkipInvalid), or truncate at the defect (StopOnFirstError). The
// returned flag reports whether any defect was seen.
//
// Same-encoding conversions are plain copies and never validate; use
// the convert.Validate functions for an explicit answer.
//
// # Concurrency
//
// All operations are pure functions over immutable inputs plus two
// read-only lookup tables. Any function may be called from multiple
// goroutines without coordination.
package uniconv
