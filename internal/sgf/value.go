package sgf

import "strings"

// Kind classifies how a property value is interpreted. It is assigned when
// a Property is constructed, by looking the identifier up in a Types table.
// Value content is never inspected to guess its kind.
type Kind int

const (
	// KindText is free text: escape and soft-line-break rules apply, and
	// line breaks are significant.
	KindText Kind = iota

	// KindPoint is a board coordinate (e.g. "pd") or the empty string for
	// a pass.
	KindPoint

	// KindNumber is an integer or real number.
	KindNumber

	// KindSimple is a short single-line token (player names, dates,
	// results, ...).
	KindSimple

	// KindNone marks a valueless property; the bracketed value is empty
	// and carries no information (e.g. KO[]).
	KindNone
)

var kindNames = map[Kind]string{
	KindText:   "text",
	KindPoint:  "point",
	KindNumber: "number",
	KindSimple: "simple",
	KindNone:   "none",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a kind name (as used in YAML type tables) back to a
// Kind. Unknown names report ok=false.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindText, false
}

// Value is one property datum: its decoded text plus a semantic kind tag.
// Raw holds the value with all backslash escapes resolved and soft line
// breaks removed.
type Value struct {
	Raw  string
	Kind Kind
}

// EscapeText re-escapes a decoded value for SGF output. Only ']' and '\'
// require a backslash; everything else round-trips verbatim.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, `]\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ']' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
