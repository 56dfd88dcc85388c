// Package parser turns SGF text into the sgf data model.
//
// It has two layers: a single-forward-scan Lexer producing a flat token
// stream (tree-open, tree-close, node-start, identifier, bracketed value),
// and a recursive-descent Parser consuming that stream per the grammar
//
//	Collection := GameTree+
//	GameTree   := '(' Node+ GameTree* ')'
//	Node       := ';' Property*
//	Property   := Identifier BracketedValue+
//
// Both layers fail with structured, positioned errors (LexError,
// ParseError) and never attempt recovery: the first error aborts the parse
// of the whole collection.
package parser
