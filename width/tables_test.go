package width

import "testing"

// The tables are a frozen snapshot; these tests pin the boundaries so
// a regeneration shows up as an explicit diff.

func TestTablesValidate(t *testing.T) {
	if err := combining.Validate(); err != nil {
		t.Errorf("combining: %v", err)
	}
	if err := doubleWidth.Validate(); err != nil {
		t.Errorf("doubleWidth: %v", err)
	}
}

func TestCombiningMembership(t *testing.T) {
	in := []rune{
		0x0300, 0x036F, // combining diacriticals
		0x0591, 0x05BD,
		0x1160, 0x11FF, // Jamo medial/final
		0x200B, 0x200D, 0x200F,
		0x20D0, 0x20EF,
		0xFB1E,
		0xFE00, 0xFE0F,
		0xFEFF,
		0x1D167,
		0x1F3FB, 0x1F3FF,
		0xE0001, 0xE0020, 0xE007F,
		0xE0100, 0xE01EF,
	}
	for _, r := range in {
		if !combining.Contains(r) {
			t.Errorf("combining should contain %#x", r)
		}
	}

	out := []rune{
		0x00AD, // soft hyphen deliberately spacing
		0x02FF, 0x0370,
		0x1100, 0x115F, // Jamo initial consonants are wide, not combining
		0x200A, 0x2010,
		0xFE10,
		0x1F3FA, 0x1F400,
		0xE0002, 0xE001F, 0xE0080,
	}
	for _, r := range out {
		if combining.Contains(r) {
			t.Errorf("combining should not contain %#x", r)
		}
	}
}

func TestDoubleWidthMembership(t *testing.T) {
	in := []rune{
		0x1100, 0x115F,
		0x2329, 0x232A,
		0x2E80, 0x303E, 0x3040, 0xA4CF,
		0xAC00, 0xD7A3,
		0xF900, 0xFAFF,
		0xFE10, 0xFE19,
		0xFE30, 0xFE6F,
		0xFF00, 0xFF60,
		0xFFE0, 0xFFE6,
		0x1F000, 0x1F9FF,
		0x1FA00, 0x1FA6F, 0x1FA70, 0x1FAFF,
		0x20000, 0x2FFFD,
		0x30000, 0x3FFFD,
	}
	for _, r := range in {
		if !doubleWidth.Contains(r) {
			t.Errorf("doubleWidth should contain %#x", r)
		}
	}

	out := []rune{
		0x10FF, 0x1160,
		0x2328, 0x232B,
		0x2E7F, 0x303F, 0xA4D0, // the carve-out and block edges
		0xABFF, 0xD7A4,
		0xFF61, 0xFFE7,
		0x1EFFF, 0x1FB00,
		0x1FFFF, 0x2FFFE,
		0x3FFFE,
	}
	for _, r := range out {
		if doubleWidth.Contains(r) {
			t.Errorf("doubleWidth should not contain %#x", r)
		}
	}
}

func TestClusterClassification(t *testing.T) {
	starters := []rune{0x1F000, 0x1F602, 0x1FAFF, 0x2600, 0x2708, 0x27BF}
	for _, r := range starters {
		if !isClusterStarter(r) {
			t.Errorf("%#x should start a cluster", r)
		}
	}
	nonStarters := []rune{'A', 0x25FF, 0x27C0, 0x1EFFF, 0x1FB00, 0x4E2D}
	for _, r := range nonStarters {
		if isClusterStarter(r) {
			t.Errorf("%#x should not start a cluster", r)
		}
	}

	modifiers := []rune{0x1F3FB, 0x1F3FF, 0x200D, 0xFE0F, 0xE0020, 0xE007F}
	for _, r := range modifiers {
		if !isClusterModifier(r) {
			t.Errorf("%#x should be a cluster modifier", r)
		}
	}
	nonModifiers := []rune{'A', 0x1F3FA, 0x200C, 0xFE0E, 0xE001F, 0xE0080}
	for _, r := range nonModifiers {
		if isClusterModifier(r) {
			t.Errorf("%#x should not be a cluster modifier", r)
		}
	}
}
