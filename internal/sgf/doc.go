// Package sgf provides the data model for SGF (Smart Game Format) game
// records: kind-tagged property values, nodes, game trees with variation
// branches, collections, and a Cursor for tree traversal.
//
// This package contains the model and its traversal only. The parser lives
// in internal/parser and imports sgf; the merge engine lives in
// internal/merge. sgf itself imports nothing internal, keeping it the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - A GameTree exclusively owns its Nodes and branch GameTrees: the
//     structure is a strict out-tree, never shared, never cyclic.
//   - Property identifiers are unique within a Node.
//   - Value sequences are never empty.
//   - Value kinds come from the identifier type table (Types), never from
//     inspecting value content.
package sgf
