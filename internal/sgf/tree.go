package sgf

import "strings"

// prettyIndent is the per-level indent for pretty-formatted output.
const prettyIndent = 2

// GameTree is a non-empty sequence of nodes (the trunk: the main line of
// the game or of a variation) followed by zero or more branch GameTrees.
// Branches begin immediately after the last trunk node; each branch is a
// distinct continuation.
type GameTree struct {
	Nodes    []*Node
	Branches []*GameTree
}

// Clone returns a deep copy of the tree.
func (g *GameTree) Clone() *GameTree {
	c := &GameTree{
		Nodes:    make([]*Node, len(g.Nodes)),
		Branches: make([]*GameTree, len(g.Branches)),
	}
	for i, n := range g.Nodes {
		c.Nodes[i] = n.Clone()
	}
	for i, b := range g.Branches {
		c.Branches[i] = b.Clone()
	}
	return c
}

// Equal reports structural equality: same trunk nodes and same branches in
// the same order.
func (g *GameTree) Equal(o *GameTree) bool {
	if len(g.Nodes) != len(o.Nodes) || len(g.Branches) != len(o.Branches) {
		return false
	}
	for i := range g.Nodes {
		if !g.Nodes[i].Equal(o.Nodes[i]) {
			return false
		}
	}
	for i := range g.Branches {
		if !g.Branches[i].Equal(o.Branches[i]) {
			return false
		}
	}
	return true
}

// Root returns the first trunk node, or nil for a (transient) empty tree.
func (g *GameTree) Root() *Node {
	if len(g.Nodes) == 0 {
		return nil
	}
	return g.Nodes[0]
}

// String returns the SGF text of the tree, nodes and branches each on
// their own line.
func (g *GameTree) String() string {
	var b strings.Builder
	g.appendSGF(&b)
	return b.String()
}

func (g *GameTree) appendSGF(b *strings.Builder) {
	b.WriteByte('(')
	for _, n := range g.Nodes {
		b.WriteByte('\n')
		n.appendSGF(b)
	}
	for _, br := range g.Branches {
		b.WriteByte('\n')
		br.appendSGF(b)
	}
	b.WriteString("\n)")
}

// Pretty returns an indented SGF rendering, two spaces per branch level.
func (g *GameTree) Pretty() string {
	var b strings.Builder
	g.appendPretty(&b, 0)
	return b.String()
}

func (g *GameTree) appendPretty(b *strings.Builder, depth int) {
	pad := strings.Repeat(" ", (depth+1)*prettyIndent)
	b.WriteByte('(')
	for _, n := range g.Nodes {
		b.WriteByte('\n')
		b.WriteString(pad)
		n.appendSGF(b)
	}
	for _, br := range g.Branches {
		b.WriteByte('\n')
		b.WriteString(pad)
		br.appendPretty(b, depth+1)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", depth*prettyIndent))
	b.WriteByte(')')
}

// Trunk returns the main line of the game (trunk plus first branch,
// recursively) as a new linear GameTree. The receiver is not modified.
func (g *GameTree) Trunk() *GameTree {
	out := &GameTree{}
	for t := g; ; {
		for _, n := range t.Nodes {
			out.Nodes = append(out.Nodes, n.Clone())
		}
		if len(t.Branches) == 0 {
			return out
		}
		t = t.Branches[0]
	}
}

// Normalize folds single-branch trees into their parent trunk: a tree with
// exactly one branch absorbs that branch's nodes and branches, repeatedly,
// then recurses into remaining branches. The set of lines of play is
// unchanged; only the shape is canonicalized.
func (g *GameTree) Normalize() {
	for len(g.Branches) == 1 {
		b := g.Branches[0]
		g.Nodes = append(g.Nodes, b.Nodes...)
		g.Branches = b.Branches
	}
	for _, b := range g.Branches {
		b.Normalize()
	}
}

// Uncomment strips all C properties from the tree.
func (g *GameTree) Uncomment() {
	for _, n := range g.Nodes {
		n.Remove("C")
	}
	for _, b := range g.Branches {
		b.Uncomment()
	}
}

// PropertySearch returns the nodes carrying the given identifier, trunk
// first then branches in order. With all=false only the first match is
// returned.
func (g *GameTree) PropertySearch(id string, all bool) []*Node {
	var matches []*Node
	for _, n := range g.Nodes {
		if n.Has(id) {
			matches = append(matches, n)
			if !all {
				return matches
			}
		}
	}
	for _, b := range g.Branches {
		matches = append(matches, b.PropertySearch(id, all)...)
		if !all && len(matches) > 0 {
			return matches[:1]
		}
	}
	return matches
}

// Lines returns every maximal move sequence reachable in the tree, each as
// a slice of "ID[value]" move strings. Info nodes contribute nothing.
// Useful for checking that a merge's union of lines is complete.
func (g *GameTree) Lines() [][]string {
	var out [][]string
	g.lines(nil, &out)
	return out
}

func (g *GameTree) lines(prefix []string, out *[][]string) {
	line := prefix
	for _, n := range g.Nodes {
		if mp := n.MoveProperty(); mp != nil {
			line = append(line[:len(line):len(line)], mp.ID+"["+mp.Values[0].Raw+"]")
		}
	}
	if len(g.Branches) == 0 {
		*out = append(*out, line)
		return
	}
	for _, b := range g.Branches {
		b.lines(line, out)
	}
}

// Collection is an ordered sequence of independent game records, one per
// game in an SGF file. Order reflects source order.
type Collection []*GameTree

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, g := range c {
		out[i] = g.Clone()
	}
	return out
}

// Equal reports structural equality, game by game.
func (c Collection) Equal(o Collection) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// String returns the SGF text of the collection, games separated by a
// blank line.
func (c Collection) String() string {
	parts := make([]string, len(c))
	for i, g := range c {
		parts[i] = g.String()
	}
	return strings.Join(parts, "\n\n")
}

// Pretty returns the indented rendering of the collection.
func (c Collection) Pretty() string {
	parts := make([]string, len(c))
	for i, g := range c {
		parts[i] = g.Pretty()
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Normalize normalizes every game in the collection.
func (c Collection) Normalize() {
	for _, g := range c {
		g.Normalize()
	}
}

// Uncomment strips comments from every game in the collection.
func (c Collection) Uncomment() {
	for _, g := range c {
		g.Uncomment()
	}
}
