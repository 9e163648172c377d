package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // source units to codepoints
	PhaseEncode   Phase = "encode"   // codepoints to target units
	PhaseConvert  Phase = "convert"  // full transcoding pipeline
	PhaseValidate Phase = "validate" // explicit sequence validation
	PhaseWidth    Phase = "width"    // column-width measurement
	PhaseTable    Phase = "table"    // interval table initialization
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedSequence Kind = "malformed_sequence" // bad lead/continuation, overlong, truncated
	KindLoneSurrogate     Kind = "lone_surrogate"     // isolated UTF-16 surrogate
	KindInvalidCodepoint  Kind = "invalid_codepoint"  // out of range or surrogate scalar
	KindControlChar       Kind = "control_char"       // C0/C1 control in measured text
	KindTableOrder        Kind = "table_order"        // interval table not sorted/non-overlapping
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupported       Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Encoding string // "utf-8", "utf-16", "utf-32", "" if not applicable
	Offset   int    // unit index of the defect, -1 if not applicable
	Rune     rune   // offending codepoint, 0 if not applicable
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Encoding != "" {
		b.WriteString(" in ")
		b.WriteString(e.Encoding)
	}

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Encoding sets the encoding name
func (b *Builder) Encoding(enc string) *Builder {
	b.err.Encoding = enc
	return b
}

// Offset sets the unit index of the defect
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Rune sets the offending codepoint
func (b *Builder) Rune(r rune) *Builder {
	b.err.Rune = r
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedSequence creates an error for an ill-formed byte sequence
func MalformedSequence(phase Phase, encoding string, offset int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindMalformedSequence,
		Encoding: encoding,
		Offset:   offset,
		Detail:   "ill-formed sequence",
	}
}

// LoneSurrogate creates an error for an isolated UTF-16 surrogate
func LoneSurrogate(phase Phase, offset int, unit uint16) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindLoneSurrogate,
		Encoding: "utf-16",
		Offset:   offset,
		Rune:     rune(unit),
		Detail:   fmt.Sprintf("isolated surrogate 0x%04X", unit),
	}
}

// InvalidCodepoint creates an error for a value outside the Unicode scalar range
func InvalidCodepoint(phase Phase, offset int, r rune) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidCodepoint,
		Encoding: "utf-32",
		Offset:   offset,
		Rune:     r,
		Detail:   fmt.Sprintf("value 0x%X is not a Unicode scalar", r),
	}
}

// ControlChar creates an error for a C0/C1 control codepoint in measured text
func ControlChar(offset int, r rune) *Error {
	return &Error{
		Phase:  PhaseWidth,
		Kind:   KindControlChar,
		Offset: offset,
		Rune:   r,
		Detail: fmt.Sprintf("control character U+%04X has no column width", r),
	}
}

// TableOrder creates an error for an interval table ordering violation
func TableOrder(index int, detail string) *Error {
	return &Error{
		Phase:  PhaseTable,
		Kind:   KindTableOrder,
		Offset: index,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}
