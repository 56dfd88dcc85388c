package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgftk/sgftk/internal/sgf"
)

// ParseErrorCode categorizes grammar-level failures.
type ParseErrorCode string

const (
	// ErrCodeUnexpectedToken indicates a token the grammar does not allow
	// at this point (e.g. input not starting with '(', or a node after a
	// variation list has opened).
	ErrCodeUnexpectedToken ParseErrorCode = "UNEXPECTED_TOKEN"

	// ErrCodeEmptyTree indicates a game tree closing with zero nodes.
	ErrCodeEmptyTree ParseErrorCode = "EMPTY_TREE"

	// ErrCodeValueExpected indicates an identifier with no following
	// bracketed value.
	ErrCodeValueExpected ParseErrorCode = "VALUE_EXPECTED"

	// ErrCodeUnbalancedTree indicates end of input with open trees.
	ErrCodeUnbalancedTree ParseErrorCode = "UNBALANCED_TREE"
)

// ParseError is a structured grammar error: the position, what the grammar
// expected, and what was found. Always fatal to the current collection.
type ParseError struct {
	Code     ParseErrorCode
	Pos      Position
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s at %s", e.Code, e.Expected, e.Found, e.Pos)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Parser is a recursive-descent consumer of the token stream. It builds
// sgf.Collection values and performs no error recovery.
type Parser struct {
	lex   *Lexer
	tok   Token
	types sgf.Types
}

// New returns a parser over src using the given property type table.
func New(src string, types sgf.Types) *Parser {
	return &Parser{lex: NewLexer(src), types: types}
}

// Parse parses a complete SGF collection with the default type table.
func Parse(src string) (sgf.Collection, error) {
	return ParseWithTypes(src, sgf.DefaultTypes())
}

// ParseWithTypes parses a complete SGF collection, classifying property
// values through the supplied table.
func ParseWithTypes(src string, types sgf.Types) (sgf.Collection, error) {
	p := New(src, types)
	return p.Collection()
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) unexpected(code ParseErrorCode, expected string) error {
	return &ParseError{
		Code:     code,
		Pos:      p.tok.Pos,
		Expected: expected,
		Found:    p.tok.Kind.String(),
	}
}

// Collection parses GameTree+ and requires the whole input is consumed.
func (p *Parser) Collection() (sgf.Collection, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var c sgf.Collection
	for {
		if p.tok.Kind == TokenEOF {
			if len(c) == 0 {
				return nil, p.unexpected(ErrCodeUnexpectedToken, "'(' starting a game tree")
			}
			return c, nil
		}
		if p.tok.Kind != TokenTreeOpen {
			return nil, p.unexpected(ErrCodeUnexpectedToken, "'(' starting a game tree")
		}
		g, err := p.gameTree()
		if err != nil {
			return nil, err
		}
		c = append(c, g)
	}
}

// gameTree parses '(' Node+ GameTree* ')'. The current token is the '('.
func (p *Parser) gameTree() (*sgf.GameTree, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	g := &sgf.GameTree{}
	for p.tok.Kind == TokenNodeStart {
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		g.Nodes = append(g.Nodes, n)
	}
	if len(g.Nodes) == 0 {
		return nil, p.unexpected(ErrCodeEmptyTree, "';' starting a node")
	}
	for p.tok.Kind == TokenTreeOpen {
		b, err := p.gameTree()
		if err != nil {
			return nil, err
		}
		g.Branches = append(g.Branches, b)
	}
	switch p.tok.Kind {
	case TokenTreeClose:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return g, nil
	case TokenEOF:
		return nil, p.unexpected(ErrCodeUnbalancedTree, "')' closing the game tree")
	default:
		// a ';' here would be a node after the variation list opened
		return nil, p.unexpected(ErrCodeUnexpectedToken, "')' closing the game tree")
	}
}

// node parses ';' Property*. The current token is the ';'.
func (p *Parser) node() (*sgf.Node, error) {
	if err := p.advance(); err != nil { // consume ';'
		return nil, err
	}
	n := sgf.NewNode()
	for p.tok.Kind == TokenIdentifier {
		id := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		var raws []string
		for p.tok.Kind == TokenValue {
			raws = append(raws, p.tok.Text)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if len(raws) == 0 {
			return nil, p.unexpected(ErrCodeValueExpected, "'[' opening a property value")
		}
		p.fold(n, id, raws)
	}
	return n, nil
}

// fold adds property values to a node, keeping identifiers unique. SGF
// allows one of each property per node, but some servers emit duplicates
// (and scalar properties with several values); list properties extend,
// scalars concatenate with a blank line, so no input data is dropped.
func (p *Parser) fold(n *sgf.Node, id string, raws []string) {
	pt := p.types.Lookup(id)
	existing := n.Get(id)
	if existing == nil {
		if pt.List {
			n.Put(sgf.NewProperty(id, pt, raws...))
		} else if len(raws) == 1 {
			n.Put(sgf.NewProperty(id, pt, raws[0]))
		} else {
			n.Put(sgf.NewProperty(id, pt, strings.Join(raws, "\n\n")))
		}
		return
	}
	if pt.List {
		for _, raw := range raws {
			existing.Values = append(existing.Values, sgf.Value{Raw: raw, Kind: pt.Kind})
		}
		return
	}
	joined := existing.Values[0].Raw + "\n\n" + strings.Join(raws, "\n\n")
	existing.Values[0] = sgf.Value{Raw: joined, Kind: pt.Kind}
}
