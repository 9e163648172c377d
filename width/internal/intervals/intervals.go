// Package intervals implements sorted codepoint interval tables with
// binary-search membership tests.
package intervals

import (
	"github.com/wippyai/uniconv/errors"
)

// Range is an inclusive codepoint interval.
type Range struct {
	Lo rune
	Hi rune
}

// Table is an ascending sequence of non-overlapping ranges.
// Contains assumes the table passed Validate.
type Table []Range

// Contains reports whether r falls inside one of the table's ranges.
func (t Table) Contains(r rune) bool {
	if len(t) == 0 || r < t[0].Lo || r > t[len(t)-1].Hi {
		return false
	}
	lo, hi := 0, len(t)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case r > t[mid].Hi:
			lo = mid + 1
		case r < t[mid].Lo:
			hi = mid - 1
		default:
			return true
		}
	}
	return false
}

// Validate checks that the table is ascending and non-overlapping.
func (t Table) Validate() error {
	for i, rg := range t {
		if rg.Lo > rg.Hi {
			return errors.TableOrder(i, "range low exceeds range high")
		}
		if i > 0 && rg.Lo <= t[i-1].Hi {
			return errors.TableOrder(i, "range overlaps or precedes previous range")
		}
	}
	return nil
}
