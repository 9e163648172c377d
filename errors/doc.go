// Package errors provides structured error types for the uniconv library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: encoding name, unit offset, offending
// codepoint, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformedSequence).
//		Encoding("utf-8").
//		Offset(6).
//		Detail("overlong encoding").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LoneSurrogate(errors.PhaseValidate, 6, 0xD800)
//	err := errors.ControlChar(0, 0x1B)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
