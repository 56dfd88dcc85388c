package sgf

import (
	"errors"
	"fmt"
)

// CursorErrorCode categorizes cursor navigation failures.
type CursorErrorCode string

const (
	// ErrCodeOutOfBounds indicates a branch index outside the current
	// node's children. This is a caller bug, not bad input data.
	ErrCodeOutOfBounds CursorErrorCode = "OUT_OF_BOUNDS"

	// ErrCodeTreeEnd indicates advancing past the end of a terminal line,
	// or retreating past the root.
	ErrCodeTreeEnd CursorErrorCode = "TREE_END"
)

// CursorError is a structured navigation error.
type CursorError struct {
	Code   CursorErrorCode
	Msg    string
	Branch int // offending branch index, for OUT_OF_BOUNDS
	Count  int // number of branches available
}

// Error implements the error interface.
func (e *CursorError) Error() string {
	if e.Code == ErrCodeOutOfBounds {
		return fmt.Sprintf("%s: %s (branch=%d, branches=%d)", e.Code, e.Msg, e.Branch, e.Count)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// IsOutOfBounds reports whether err is a cursor out-of-bounds error.
// Uses errors.As to handle wrapped errors.
func IsOutOfBounds(err error) bool {
	var ce *CursorError
	return errors.As(err, &ce) && ce.Code == ErrCodeOutOfBounds
}

// IsTreeEnd reports whether err is a cursor tree-end error.
func IsTreeEnd(err error) bool {
	var ce *CursorError
	return errors.As(err, &ce) && ce.Code == ErrCodeTreeEnd
}

func newOutOfBoundsError(branch, count int) *CursorError {
	return &CursorError{
		Code:   ErrCodeOutOfBounds,
		Msg:    "nonexistent branch",
		Branch: branch,
		Count:  count,
	}
}

func newTreeEndError(msg string) *CursorError {
	return &CursorError{Code: ErrCodeTreeEnd, Msg: msg}
}

// frame records one level of descent: the tree we were in and the trunk
// index of its last node (where the branches hang).
type frame struct {
	tree  *GameTree
	index int
}

// Cursor is a stateful traversal handle over a GameTree. Its position is
// the current subtree plus a trunk index, with the chain of frames above
// recording the branch path from the root. A Cursor never mutates the
// tree; the merge engine reads Subtree/Index from it when splicing.
type Cursor struct {
	root  *GameTree
	tree  *GameTree
	index int
	stack []frame
	ply   int
}

// NewCursor returns a cursor positioned at the root node of g.
func NewCursor(g *GameTree) *Cursor {
	return &Cursor{root: g, tree: g}
}

// Reset moves the cursor back to the root node.
func (c *Cursor) Reset() {
	c.tree = c.root
	c.index = 0
	c.stack = c.stack[:0]
	c.ply = 0
}

// Node returns the current node.
func (c *Cursor) Node() *Node {
	return c.tree.Nodes[c.index]
}

// Subtree returns the GameTree the cursor currently points into.
func (c *Cursor) Subtree() *GameTree {
	return c.tree
}

// Index returns the trunk index of the current node within Subtree.
func (c *Cursor) Index() int {
	return c.index
}

// Ply returns the number of nodes between the root and the current
// position (the root node is ply 0).
func (c *Cursor) Ply() int {
	return c.ply
}

// AtStart reports whether the cursor is at the root node.
func (c *Cursor) AtStart() bool {
	return len(c.stack) == 0 && c.index == 0
}

// AtTrunkEnd reports whether the current node is the last of this
// subtree's trunk. Branches, if any, hang here.
func (c *Cursor) AtTrunkEnd() bool {
	return c.index+1 >= len(c.tree.Nodes)
}

// AtEnd reports whether the current node terminates a line: end of trunk
// with no branches.
func (c *Cursor) AtEnd() bool {
	return c.AtTrunkEnd() && len(c.tree.Branches) == 0
}

// AtBranchPoint reports whether the current node is a branch point: end of
// trunk with at least one branch below.
func (c *Cursor) AtBranchPoint() bool {
	return c.AtTrunkEnd() && len(c.tree.Branches) > 0
}

// Children returns the head node of every continuation from the current
// position: the next trunk node, or each branch's first node.
func (c *Cursor) Children() []*Node {
	if !c.AtTrunkEnd() {
		return []*Node{c.tree.Nodes[c.index+1]}
	}
	heads := make([]*Node, 0, len(c.tree.Branches))
	for _, b := range c.tree.Branches {
		heads = append(heads, b.Root())
	}
	return heads
}

// Advance moves to the next node and returns it. Within a trunk, branch
// must be 0; at a branch point, branch selects which child tree to descend
// into. Advancing past a terminal line fails with TREE_END; a bad branch
// index fails with OUT_OF_BOUNDS.
func (c *Cursor) Advance(branch int) (*Node, error) {
	switch {
	case !c.AtTrunkEnd():
		if branch != 0 {
			return nil, newOutOfBoundsError(branch, 1)
		}
		c.index++
	case len(c.tree.Branches) > 0:
		if branch < 0 || branch >= len(c.tree.Branches) {
			return nil, newOutOfBoundsError(branch, len(c.tree.Branches))
		}
		c.stack = append(c.stack, frame{tree: c.tree, index: c.index})
		c.tree = c.tree.Branches[branch]
		c.index = 0
	default:
		return nil, newTreeEndError("advance past end of line")
	}
	c.ply++
	return c.Node(), nil
}

// Previous moves to the previous node and returns it. Retreating past the
// root fails with TREE_END.
func (c *Cursor) Previous() (*Node, error) {
	switch {
	case c.index > 0:
		c.index--
	case len(c.stack) > 0:
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		c.tree = top.tree
		c.index = top.index
	default:
		return nil, newTreeEndError("retreat past start of game")
	}
	c.ply--
	return c.Node(), nil
}

// IntoBranch descends into the i'th branch of the current subtree. It is
// only meaningful at the trunk end; elsewhere, or with i out of range, it
// fails with OUT_OF_BOUNDS.
func (c *Cursor) IntoBranch(i int) (*Node, error) {
	if !c.AtTrunkEnd() {
		return nil, newOutOfBoundsError(i, 0)
	}
	return c.Advance(i)
}

// ToParent pops back to the branch point the current subtree hangs from.
// At the root subtree it fails with TREE_END.
func (c *Cursor) ToParent() error {
	if len(c.stack) == 0 {
		return newTreeEndError("no parent above the root tree")
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ply -= c.index + 1
	c.tree = top.tree
	c.index = top.index
	return nil
}
