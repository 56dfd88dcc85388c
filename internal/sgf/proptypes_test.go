package sgf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTypesLookup(t *testing.T) {
	types := DefaultTypes()

	tests := []struct {
		id   string
		want PropType
	}{
		{"B", PropType{Kind: KindPoint}},
		{"W", PropType{Kind: KindPoint}},
		{"AB", PropType{Kind: KindPoint, List: true}},
		{"TR", PropType{Kind: KindPoint, List: true}},
		{"LB", PropType{Kind: KindSimple, List: true}},
		{"KM", PropType{Kind: KindNumber}},
		{"SZ", PropType{Kind: KindNumber}},
		{"C", PropType{Kind: KindText}},
		{"PB", PropType{Kind: KindSimple}},
		{"RE", PropType{Kind: KindSimple}},
		{"KO", PropType{Kind: KindNone}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, types.Lookup(tt.id))
		})
	}
}

func TestLookupUnknownDefaultsToScalarText(t *testing.T) {
	types := DefaultTypes()
	assert.Equal(t, PropType{Kind: KindText}, types.Lookup("XYZZY"))
}

func TestDefaultTypesReturnsFreshCopy(t *testing.T) {
	a := DefaultTypes()
	a["B"] = PropType{Kind: KindText}
	b := DefaultTypes()
	assert.Equal(t, PropType{Kind: KindPoint}, b.Lookup("B"))
}

func TestLoadTypes(t *testing.T) {
	doc := `
XX: {kind: point, list: true}
PB: {kind: text}
`
	types, err := LoadTypes(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, PropType{Kind: KindPoint, List: true}, types.Lookup("XX"))
	assert.Equal(t, PropType{Kind: KindText}, types.Lookup("PB"))
	// Untouched defaults survive the overlay.
	assert.Equal(t, PropType{Kind: KindPoint}, types.Lookup("B"))
}

func TestLoadTypesRejectsUnknownKind(t *testing.T) {
	_, err := LoadTypes(strings.NewReader("XX: {kind: float}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "float"`)
}

func TestLoadTypesRejectsMalformedYAML(t *testing.T) {
	_, err := LoadTypes(strings.NewReader("::not yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property type table")
}
