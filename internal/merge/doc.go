// Package merge combines game trees believed to record the same game into
// a single tree that is the union of all their lines of play, with no line
// duplicated.
//
// The reduction is a left fold: the first input (deep-copied) is the
// accumulator and each subsequent tree is merged into it pairwise, walking
// both trees in lockstep with sgf.Cursor. Equivalent nodes have their
// properties unioned; the first non-equivalent node starts a divergence,
// and the remaining suffix of the incoming tree is matched against the
// accumulator's existing children by first-move equivalence: the merge
// recurses into a match and appends a new variation otherwise.
//
// Property disagreements are never fatal: list properties union, comments
// concatenate with a provenance prefix, and scalar conflicts keep the
// accumulator's value while recording the dropped one in the Report and as
// a comment annotation. The only hard merge failure is INCOMPATIBLE_ROOT,
// raised when two trees cannot even align their first nodes.
//
// Inputs are never mutated; results are deterministic in input order.
package merge
