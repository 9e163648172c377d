package convert_test

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/uniconv/convert"
	"github.com/wippyai/uniconv/errors"
)

func TestValidateUTF8(t *testing.T) {
	if err := convert.ValidateUTF8([]byte("Résumé 中国人 😂")); err != nil {
		t.Errorf("clean input: %v", err)
	}
	if err := convert.ValidateUTF8(nil); err != nil {
		t.Errorf("empty input: %v", err)
	}

	err := convert.ValidateUTF8(invalidUTF8())
	if err == nil {
		t.Fatal("malformed input: want error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type %T", err)
	}
	if e.Kind != errors.KindMalformedSequence || e.Phase != errors.PhaseValidate {
		t.Errorf("got [%s] %s", e.Phase, e.Kind)
	}
	if e.Offset != 6 {
		t.Errorf("Offset = %d, want 6 (first defect)", e.Offset)
	}
}

func TestValidateUTF16(t *testing.T) {
	if err := convert.ValidateUTF16(utf16Units("Hello 😂")); err != nil {
		t.Errorf("clean input: %v", err)
	}

	err := convert.ValidateUTF16(invalidUTF16())
	if err == nil {
		t.Fatal("malformed input: want error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type %T", err)
	}
	if e.Kind != errors.KindLoneSurrogate {
		t.Errorf("Kind = %s", e.Kind)
	}
	if e.Offset != 6 || e.Rune != 0xD800 {
		t.Errorf("Offset = %d Rune = %#x, want 6 and 0xD800", e.Offset, e.Rune)
	}
}

func TestValidateUTF32(t *testing.T) {
	if err := convert.ValidateUTF32([]rune("clean")); err != nil {
		t.Errorf("clean input: %v", err)
	}

	err := convert.ValidateUTF32([]rune{'a', 'b', 0x110000})
	if err == nil {
		t.Fatal("out-of-range unit: want error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error type %T", err)
	}
	if e.Kind != errors.KindInvalidCodepoint || e.Offset != 2 {
		t.Errorf("got %s at %d", e.Kind, e.Offset)
	}

	if err := convert.ValidateUTF32([]rune{0xD800}); err == nil {
		t.Error("surrogate unit: want error")
	}
}
