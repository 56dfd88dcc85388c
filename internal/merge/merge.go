package merge

import (
	"fmt"
	"strings"

	"github.com/sgftk/sgftk/internal/sgf"
)

// Input pairs a game tree with its provenance label. The label (already
// delimited by the caller, e.g. "[[review.sgf]]") prefixes comments and
// variations contributed by this input; empty means unlabeled.
type Input struct {
	Tree  *sgf.GameTree
	Label string
}

// Options configure an Engine. Zero values select the defaults: the
// built-in property type table, the default ignore set, and provenance
// comments on every difference.
type Options struct {
	Types sgf.Types
	// Ignores suppresses conflicts per identifier/value.
	Ignores IgnoreSet
	// CommentsOnBranchesOnly restricts provenance labels to new variation
	// heads; merged comments and conflict annotations stay unlabeled.
	CommentsOnBranchesOnly bool
}

// Engine merges game trees pairwise into an accumulator. An Engine is
// single-use per fold: its Report accumulates across Accumulate calls.
type Engine struct {
	types        sgf.Types
	ignores      IgnoreSet
	branchesOnly bool
	report       *Report
}

// NewEngine returns an engine with a fresh report.
func NewEngine(opts Options) *Engine {
	types := opts.Types
	if types == nil {
		types = sgf.DefaultTypes()
	}
	ignores := opts.Ignores
	if ignores == nil {
		ignores = DefaultIgnores()
	}
	return &Engine{
		types:        types,
		ignores:      ignores,
		branchesOnly: opts.CommentsOnBranchesOnly,
		report:       newReport(),
	}
}

// Report returns the engine's accumulated merge report.
func (e *Engine) Report() *Report {
	return e.report
}

// Single extracts the one game of a collection, or fails with
// MULTI_GAME_COLLECTION: only single-game records can be merged.
func Single(c sgf.Collection, source string) (*sgf.GameTree, error) {
	if len(c) != 1 {
		return nil, &MergeError{
			Code:   ErrCodeMultiGameCollection,
			Msg:    fmt.Sprintf("collection holds %d games; only one game can be merged at a time", len(c)),
			Source: source,
		}
	}
	return c[0], nil
}

// Merge folds all inputs left to right into a new tree. The inputs are
// never mutated. The first hard error (INCOMPATIBLE_ROOT) aborts the fold;
// callers that prefer to skip bad inputs can drive an Engine directly.
func Merge(inputs []Input, opts Options) (*sgf.GameTree, *Report, error) {
	e := NewEngine(opts)
	if len(inputs) == 0 {
		return nil, e.report, &MergeError{Code: ErrCodeNoInput, Msg: "at least one input tree is required"}
	}
	acc := e.Start(inputs[0])
	for _, in := range inputs[1:] {
		if err := e.Accumulate(acc, in); err != nil {
			return nil, e.report, err
		}
	}
	return acc, e.report, nil
}

// Start deep-copies the first input into a fresh accumulator, applying its
// provenance label to the root comment.
func (e *Engine) Start(in Input) *sgf.GameTree {
	e.report.Inputs++
	acc := in.Tree.Clone()
	if in.Label != "" && !e.branchesOnly {
		acc.Root().PrefixComment(in.Label)
	}
	return acc
}

// Accumulate merges one incoming tree into the accumulator. The incoming
// tree is not mutated; pieces spliced into the accumulator are copies. The
// accumulator is normalized afterwards so single-variation chains created
// by trunk extensions fold back into the trunk.
func (e *Engine) Accumulate(acc *sgf.GameTree, in Input) error {
	inc := in.Tree.Clone()
	if !acc.Root().Equivalent(inc.Root()) {
		return newIncompatibleRootError(in.Label)
	}
	e.report.Inputs++
	e.mergeTrees(acc, inc, in.Label, 0)
	acc.Normalize()
	return nil
}

// mergeTrees walks the trunks of both subtrees in lockstep with cursors.
// The first nodes are already known equivalent. base is the ply of the
// first node within the whole game, for reporting.
func (e *Engine) mergeTrees(acc, inc *sgf.GameTree, label string, base int) {
	a, b := sgf.NewCursor(acc), sgf.NewCursor(inc)
	for {
		e.mergeNode(a.Node(), b.Node(), label, base+a.Ply())
		if a.AtTrunkEnd() || b.AtTrunkEnd() {
			break
		}
		an, _ := a.Advance(0)
		bn, _ := b.Advance(0)
		if !an.Equivalent(bn) {
			e.diverge(a, b, label, base)
			return
		}
	}
	e.reconcileEnds(a, b, label, base)
}

// diverge handles two aligned but non-equivalent nodes mid-trunk: the
// accumulator's remainder becomes its first variation and the incoming
// suffix is attached alongside it.
func (e *Engine) diverge(a, b *sgf.Cursor, label string, base int) {
	acc, ai := a.Subtree(), a.Index()
	rest := &sgf.GameTree{Nodes: acc.Nodes[ai:], Branches: acc.Branches}
	acc.Nodes = acc.Nodes[:ai:ai]
	acc.Branches = []*sgf.GameTree{rest}

	inc, bi := b.Subtree(), b.Index()
	suffix := &sgf.GameTree{Nodes: inc.Nodes[bi:], Branches: inc.Branches}
	e.attach(acc, suffix, label, base+a.Ply())
}

// reconcileEnds runs once the lockstep walk has merged the last aligned
// pair: at least one cursor sits at its trunk end. Whatever remains of the
// incoming tree is wrapped as variations and matched against the
// accumulator's continuations.
func (e *Engine) reconcileEnds(a, b *sgf.Cursor, label string, base int) {
	acc, ai := a.Subtree(), a.Index()
	inc, bi := b.Subtree(), b.Index()

	var pending []*sgf.GameTree
	if bi+1 < len(inc.Nodes) {
		pending = []*sgf.GameTree{{Nodes: inc.Nodes[bi+1:], Branches: inc.Branches}}
	} else {
		pending = inc.Branches
	}
	if len(pending) == 0 {
		return
	}

	// Align the accumulator: if its trunk continues past the shared part,
	// that continuation becomes its first variation.
	if ai+1 < len(acc.Nodes) {
		rest := &sgf.GameTree{Nodes: acc.Nodes[ai+1:], Branches: acc.Branches}
		acc.Nodes = acc.Nodes[: ai+1 : ai+1]
		acc.Branches = []*sgf.GameTree{rest}
	}

	for _, ib := range pending {
		e.attach(acc, ib, label, base+a.Ply()+1)
	}
}

// attach adds one incoming variation below acc's trunk end: if an existing
// child starts with an equivalent node the merge recurses into it,
// otherwise the variation is appended after all existing children, in
// supplied order, with its provenance label prefixed.
func (e *Engine) attach(acc, ib *sgf.GameTree, label string, headPly int) {
	head := ib.Root()
	for _, child := range acc.Branches {
		if child.Root().Equivalent(head) {
			e.mergeTrees(child, ib, label, headPly)
			return
		}
	}
	if label != "" {
		ib.Root().PrefixComment(label)
	}
	acc.Branches = append(acc.Branches, ib)
	e.report.Branches = append(e.report.Branches, BranchNote{
		Ply:    headPly,
		Head:   nodeDesc(head),
		Source: label,
	})
}

// mergeNode unions the incoming node's properties into the accumulator
// node, identifier by identifier.
func (e *Engine) mergeNode(an, bn *sgf.Node, label string, ply int) {
	for _, p := range bn.Properties() {
		pt := e.types.Lookup(p.ID)
		if !pt.List && e.ignores.ignored(p.ID, p.Values[0].Raw) {
			continue
		}
		if p.ID == "C" {
			e.mergeComment(an, p.Values[0].Raw, label)
			continue
		}
		mine := an.Get(p.ID)
		if mine == nil {
			an.Put(p.Clone())
			continue
		}
		if pt.List {
			unionValues(mine, p)
			continue
		}
		kept, dropped := mine.Values[0].Raw, p.Values[0].Raw
		if scalarEqual(pt.Kind, kept, dropped) {
			continue
		}
		// Unresolved scalar mismatch: accumulator wins, incoming value is
		// recorded for review.
		e.report.Conflicts = append(e.report.Conflicts, Conflict{
			Ply:     ply,
			Node:    nodeDesc(an),
			ID:      p.ID,
			Kept:    kept,
			Dropped: dropped,
			Source:  label,
		})
		if !e.branchesOnly {
			an.AppendComment(conflictNote(label, p.ID, kept, dropped))
		}
	}
}

// unionValues appends incoming values not already present, preserving
// first-seen order.
func unionValues(mine, incoming *sgf.Property) {
	seen := make(map[string]bool, len(mine.Values))
	for _, v := range mine.Values {
		seen[v.Raw] = true
	}
	for _, v := range incoming.Values {
		if !seen[v.Raw] {
			mine.Values = append(mine.Values, v)
			seen[v.Raw] = true
		}
	}
}

// mergeComment concatenates a differing incoming comment onto the node,
// separated by a blank line and prefixed with the provenance label. Equal
// comments (after trimming) are kept once.
func (e *Engine) mergeComment(an *sgf.Node, text, label string) {
	incoming := strings.TrimSpace(text)
	if incoming == "" {
		return
	}
	cur := strings.TrimSpace(an.Comment())
	if cur == incoming {
		return
	}
	if label != "" && !e.branchesOnly {
		incoming = label + "\n" + incoming
	}
	if cur == "" {
		an.SetComment(incoming)
		return
	}
	an.SetComment(cur + "\n\n" + incoming)
}

func conflictNote(label, id, kept, dropped string) string {
	note := fmt.Sprintf("%s[%s] ignored (kept [%s])", id, dropped, kept)
	if label != "" {
		note = label + " " + note
	}
	return note
}

func nodeDesc(n *sgf.Node) string {
	if mp := n.MoveProperty(); mp != nil {
		return mp.ID + "[" + mp.Values[0].Raw + "]"
	}
	return "root"
}
