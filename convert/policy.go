package convert

// Policy selects the behavior of a conversion when it meets a
// malformed source element.
type Policy uint8

const (
	// ReplaceInvalid emits the target encoding of U+FFFD for each
	// defect and continues. This is the default.
	ReplaceInvalid Policy = iota

	// SkipInvalid emits nothing for a defect and continues.
	SkipInvalid

	// StopOnFirstError stops at the first defect and returns the
	// output produced so far.
	StopOnFirstError
)

func (p Policy) String() string {
	switch p {
	case ReplaceInvalid:
		return "replace"
	case SkipInvalid:
		return "skip"
	case StopOnFirstError:
		return "stop"
	default:
		return "unknown"
	}
}
