package sgf

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PropType describes how one property identifier's values are handled.
// List identifiers hold an ordered multi-value sequence whose order is
// semantically significant; all others hold exactly one value.
type PropType struct {
	Kind Kind
	List bool
}

// Types maps property identifiers to their handling rules. The table is
// plain configuration data: callers may copy and extend it, and the zero
// identifier lookup falls back to a scalar text property so unknown
// identifiers still round-trip losslessly.
type Types map[string]PropType

// Lookup returns the PropType for id, defaulting to a scalar text property
// for identifiers not in the table.
func (t Types) Lookup(id string) PropType {
	if pt, ok := t[id]; ok {
		return pt
	}
	return PropType{Kind: KindText}
}

// DefaultTypes returns a fresh copy of the built-in identifier table,
// covering the FF[4] property set. Callers may mutate the returned map.
func DefaultTypes() Types {
	t := make(Types, len(defaultTypes))
	for id, pt := range defaultTypes {
		t[id] = pt
	}
	return t
}

var defaultTypes = Types{
	// Moves.
	"B": {Kind: KindPoint},
	"W": {Kind: KindPoint},

	// Point lists (setup stones, markup, territory).
	"AB": {Kind: KindPoint, List: true},
	"AE": {Kind: KindPoint, List: true},
	"AW": {Kind: KindPoint, List: true},
	"CR": {Kind: KindPoint, List: true},
	"DD": {Kind: KindPoint, List: true},
	"MA": {Kind: KindPoint, List: true},
	"SL": {Kind: KindPoint, List: true},
	"SQ": {Kind: KindPoint, List: true},
	"TB": {Kind: KindPoint, List: true},
	"TR": {Kind: KindPoint, List: true},
	"TW": {Kind: KindPoint, List: true},
	"VW": {Kind: KindPoint, List: true},

	// Composed lists (point:point / point:text).
	"AR": {Kind: KindSimple, List: true},
	"LB": {Kind: KindSimple, List: true},
	"LN": {Kind: KindSimple, List: true},

	// Numbers.
	"BL": {Kind: KindNumber},
	"BM": {Kind: KindNumber},
	"DM": {Kind: KindNumber},
	"FF": {Kind: KindNumber},
	"GB": {Kind: KindNumber},
	"GM": {Kind: KindNumber},
	"GW": {Kind: KindNumber},
	"HA": {Kind: KindNumber},
	"HO": {Kind: KindNumber},
	"KM": {Kind: KindNumber},
	"MN": {Kind: KindNumber},
	"OB": {Kind: KindNumber},
	"OW": {Kind: KindNumber},
	"PM": {Kind: KindNumber},
	"ST": {Kind: KindNumber},
	"SZ": {Kind: KindNumber},
	"TE": {Kind: KindNumber},
	"TM": {Kind: KindNumber},
	"UC": {Kind: KindNumber},
	"V":  {Kind: KindNumber},
	"WL": {Kind: KindNumber},

	// Free text.
	"C":  {Kind: KindText},
	"GC": {Kind: KindText},

	// Simple text.
	"AN": {Kind: KindSimple},
	"AP": {Kind: KindSimple},
	"AS": {Kind: KindSimple},
	"BR": {Kind: KindSimple},
	"BT": {Kind: KindSimple},
	"CA": {Kind: KindSimple},
	"CP": {Kind: KindSimple},
	"DT": {Kind: KindSimple},
	"EV": {Kind: KindSimple},
	"FG": {Kind: KindSimple},
	"GN": {Kind: KindSimple},
	"IP": {Kind: KindSimple},
	"IY": {Kind: KindSimple},
	"N":  {Kind: KindSimple},
	"ON": {Kind: KindSimple},
	"OT": {Kind: KindSimple},
	"PB": {Kind: KindSimple},
	"PC": {Kind: KindSimple},
	"PL": {Kind: KindSimple},
	"PW": {Kind: KindSimple},
	"RE": {Kind: KindSimple},
	"RO": {Kind: KindSimple},
	"RU": {Kind: KindSimple},
	"SE": {Kind: KindSimple},
	"SO": {Kind: KindSimple},
	"SU": {Kind: KindSimple},
	"US": {Kind: KindSimple},
	"WR": {Kind: KindSimple},
	"WT": {Kind: KindSimple},

	// Valueless markers.
	"DO": {Kind: KindNone},
	"IT": {Kind: KindNone},
	"KO": {Kind: KindNone},
}

// MoveIDs are the identifiers that make a node a move node. Exactly one of
// them may appear per node.
var MoveIDs = []string{"B", "W"}

// typeOverride is the YAML document shape for one identifier entry.
type typeOverride struct {
	Kind string `yaml:"kind"`
	List bool   `yaml:"list"`
}

// LoadTypes reads a YAML mapping of identifier to {kind, list} and overlays
// it on the defaults, so game- or server-specific identifiers can be
// classified without code changes:
//
//	XX: {kind: point, list: true}
//	ZZ: {kind: simple}
func LoadTypes(r io.Reader) (Types, error) {
	var doc map[string]typeOverride
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("property type table: %w", err)
	}
	t := DefaultTypes()
	for id, o := range doc {
		kind, ok := ParseKind(o.Kind)
		if !ok {
			return nil, fmt.Errorf("property type table: identifier %q: unknown kind %q", id, o.Kind)
		}
		t[id] = PropType{Kind: kind, List: o.List}
	}
	return t, nil
}
