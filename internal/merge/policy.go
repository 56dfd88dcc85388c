package merge

import (
	"math"
	"strconv"
	"strings"

	"github.com/sgftk/sgftk/internal/sgf"
)

// IgnoreAny, as a value in an ignore set, suppresses conflicts on the
// identifier regardless of the incoming value.
const IgnoreAny = "*"

// IgnoreSet maps property identifiers to the incoming values that should
// be dropped silently instead of reported as conflicts.
type IgnoreSet map[string]map[string]bool

// DefaultIgnores returns the built-in ignore set: unknown results (RE[?])
// and the recording application (AP, any value) routinely differ between
// copies of the same game and are not worth a conflict each.
func DefaultIgnores() IgnoreSet {
	return IgnoreSet{
		"RE": {"?": true},
		"AP": {IgnoreAny: true},
	}
}

// Add registers an identifier (value == "" means any value) in the set.
func (s IgnoreSet) Add(id, value string) {
	if value == "" {
		value = IgnoreAny
	}
	if s[id] == nil {
		s[id] = make(map[string]bool)
	}
	s[id][value] = true
}

func (s IgnoreSet) ignored(id, value string) bool {
	set := s[id]
	return set != nil && (set[IgnoreAny] || set[value])
}

// scalarEqual decides whether two scalar values are close enough to not be
// a conflict: exact match, numerically close for number-kinded values, or
// case-insensitively equal for text-kinded values.
func scalarEqual(kind sgf.Kind, a, b string) bool {
	if a == b {
		return true
	}
	switch kind {
	case sgf.KindNumber:
		x, errX := strconv.ParseFloat(strings.TrimSpace(a), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(b), 64)
		return errX == nil && errY == nil && closeEnough(x, y)
	case sgf.KindText, sgf.KindSimple:
		return strings.EqualFold(a, b)
	}
	return false
}

func closeEnough(x, y float64) bool {
	diff := math.Abs(x - y)
	return diff <= 1e-9*math.Max(math.Abs(x), math.Abs(y)) || diff < 1e-12
}
