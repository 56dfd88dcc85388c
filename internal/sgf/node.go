package sgf

import (
	"fmt"
	"strings"
)

// Property is an identifier plus its ordered, non-empty value sequence.
type Property struct {
	ID     string
	Values []Value
}

// NewProperty builds a Property, tagging every value with the kind from pt.
func NewProperty(id string, pt PropType, raws ...string) *Property {
	vals := make([]Value, len(raws))
	for i, raw := range raws {
		vals[i] = Value{Raw: raw, Kind: pt.Kind}
	}
	return &Property{ID: id, Values: vals}
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	vals := make([]Value, len(p.Values))
	copy(vals, p.Values)
	return &Property{ID: p.ID, Values: vals}
}

// Equal reports whether both properties carry the same identifier and the
// same decoded values in the same order.
func (p *Property) Equal(o *Property) bool {
	if p.ID != o.ID || len(p.Values) != len(o.Values) {
		return false
	}
	for i := range p.Values {
		if p.Values[i].Raw != o.Values[i].Raw {
			return false
		}
	}
	return true
}

// Strings returns the decoded values as a plain string slice.
func (p *Property) Strings() []string {
	out := make([]string, len(p.Values))
	for i, v := range p.Values {
		out[i] = v.Raw
	}
	return out
}

func (p *Property) appendSGF(b *strings.Builder) {
	b.WriteString(p.ID)
	for _, v := range p.Values {
		b.WriteByte('[')
		b.WriteString(EscapeText(v.Raw))
		b.WriteByte(']')
	}
}

// Node is one ply of the game (or the root/info node): an ordered mapping
// from property identifier to Property. Insertion order is preserved for
// round-trip fidelity. Identifiers are unique within a node.
type Node struct {
	props []*Property
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{}
}

// Get returns the property with the given identifier, or nil.
func (n *Node) Get(id string) *Property {
	for _, p := range n.props {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Has reports whether the node carries the given identifier.
func (n *Node) Has(id string) bool {
	return n.Get(id) != nil
}

// Properties returns the node's properties in insertion order. The slice
// must not be modified by callers; it is exposed for read-only traversal.
func (n *Node) Properties() []*Property {
	return n.props
}

// Len returns the number of properties.
func (n *Node) Len() int {
	return len(n.props)
}

// Add appends a property. It fails if the identifier is already present:
// SGF allows only one of each property per node.
func (n *Node) Add(p *Property) error {
	if n.Has(p.ID) {
		return fmt.Errorf("duplicate property %q in node", p.ID)
	}
	n.props = append(n.props, p)
	return nil
}

// Put replaces the property with the same identifier, or appends it.
func (n *Node) Put(p *Property) {
	for i, q := range n.props {
		if q.ID == p.ID {
			n.props[i] = p
			return
		}
	}
	n.props = append(n.props, p)
}

// Remove deletes the property with the given identifier, if present.
func (n *Node) Remove(id string) {
	for i, p := range n.props {
		if p.ID == id {
			n.props = append(n.props[:i], n.props[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := &Node{props: make([]*Property, len(n.props))}
	for i, p := range n.props {
		c.props[i] = p.Clone()
	}
	return c
}

// Equal reports property-by-property equality, in insertion order.
func (n *Node) Equal(o *Node) bool {
	if len(n.props) != len(o.props) {
		return false
	}
	for i := range n.props {
		if !n.props[i].Equal(o.props[i]) {
			return false
		}
	}
	return true
}

// MoveProperty returns the node's move property (B or W), or nil for
// info/setup nodes.
func (n *Node) MoveProperty() *Property {
	for _, id := range MoveIDs {
		if p := n.Get(id); p != nil {
			return p
		}
	}
	return nil
}

// IsInfo reports whether the node carries no move property: the root/info
// node, setup nodes, and bare comment nodes all qualify.
func (n *Node) IsInfo() bool {
	return n.MoveProperty() == nil
}

// Equivalent decides whether two nodes represent the same ply: either both
// lack a move property, or both carry the same move property with the same
// coordinate. The merge engine aligns nodes with this rule.
func (n *Node) Equivalent(o *Node) bool {
	mp, op := n.MoveProperty(), o.MoveProperty()
	if mp == nil && op == nil {
		return true
	}
	if mp == nil || op == nil {
		return false
	}
	return mp.Equal(op)
}

// Comment returns the node's C property text, or "".
func (n *Node) Comment() string {
	if p := n.Get("C"); p != nil {
		return p.Values[0].Raw
	}
	return ""
}

// SetComment replaces (or creates) the node's C property.
func (n *Node) SetComment(text string) {
	n.Put(&Property{ID: "C", Values: []Value{{Raw: text, Kind: KindText}}})
}

// PrefixComment prepends text to the node's comment, creating the comment
// if absent. Empty text is a no-op.
func (n *Node) PrefixComment(text string) {
	if text == "" {
		return
	}
	if cur := n.Comment(); strings.TrimSpace(cur) != "" {
		n.SetComment(text + "\n" + cur)
	} else {
		n.SetComment(text)
	}
}

// AppendComment appends text to the node's comment, separated by a blank
// line, creating the comment if absent. Empty text is a no-op.
func (n *Node) AppendComment(text string) {
	if text == "" {
		return
	}
	if cur := strings.TrimSpace(n.Comment()); cur != "" {
		n.SetComment(cur + "\n\n" + text)
	} else {
		n.SetComment(text)
	}
}

// String returns the node in SGF form, e.g. ";B[pd]C[good move]".
func (n *Node) String() string {
	var b strings.Builder
	n.appendSGF(&b)
	return b.String()
}

func (n *Node) appendSGF(b *strings.Builder) {
	b.WriteByte(';')
	for _, p := range n.props {
		p.appendSGF(b)
	}
}
