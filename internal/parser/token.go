package parser

import "fmt"

// Position locates a token or error within the source text. Offset is a
// 0-based byte offset; Line and Col are 1-based.
type Position struct {
	Offset int
	Line   int
	Col    int
}

// String renders the position for error messages.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d (byte %d)", p.Line, p.Col, p.Offset)
}

// TokenKind identifies the five SGF token shapes plus end of input.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenTreeOpen
	TokenTreeClose
	TokenNodeStart
	TokenIdentifier
	TokenValue
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "end of input",
	TokenTreeOpen:   "'('",
	TokenTreeClose:  "')'",
	TokenNodeStart:  "';'",
	TokenIdentifier: "identifier",
	TokenValue:      "bracketed value",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown token"
}

// Token is one lexed element. Text holds the identifier letters for
// TokenIdentifier, or the decoded value (escapes resolved, soft line
// breaks removed) for TokenValue; it is empty otherwise.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}
