package parser

import (
	"errors"
	"fmt"
	"strings"
)

// LexErrorCode categorizes token-level failures.
type LexErrorCode string

const (
	// ErrCodeUnterminatedValue indicates a bracketed value still open at
	// end of input. The position is that of the opening '['.
	ErrCodeUnterminatedValue LexErrorCode = "UNTERMINATED_VALUE"

	// ErrCodeIllegalIdentifier indicates a character that cannot start a
	// token: identifiers are ASCII letters only.
	ErrCodeIllegalIdentifier LexErrorCode = "ILLEGAL_IDENTIFIER"
)

// LexError is a structured token-level error. It is always fatal to the
// parse of the current collection.
type LexError struct {
	Code LexErrorCode
	Pos  Position
	Msg  string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Code, e.Msg, e.Pos)
}

// IsLexError reports whether err is (or wraps) a LexError.
func IsLexError(err error) bool {
	var le *LexError
	return errors.As(err, &le)
}

// Lexer is a single forward scan over SGF text. It keeps O(1) state beyond
// the in-progress value buffer: a byte offset and the line/column it maps
// to.
type Lexer struct {
	src  string
	off  int
	line int
	col  int
}

// NewLexer returns a lexer over src, positioned at line 1, column 1.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) pos() Position {
	return Position{Offset: l.off, Line: l.line, Col: l.col}
}

// lineBreakAt returns the raw text of the line break starting at off, if
// any. CR, LF, CR/LF and LF/CR each count as one break.
func (l *Lexer) lineBreakAt(off int) (string, bool) {
	if off >= len(l.src) {
		return "", false
	}
	switch l.src[off] {
	case '\n':
		if off+1 < len(l.src) && l.src[off+1] == '\r' {
			return l.src[off : off+2], true
		}
		return l.src[off : off+1], true
	case '\r':
		if off+1 < len(l.src) && l.src[off+1] == '\n' {
			return l.src[off : off+2], true
		}
		return l.src[off : off+1], true
	}
	return "", false
}

// bump consumes n non-linebreak bytes.
func (l *Lexer) bump(n int) {
	l.off += n
	l.col += n
}

// bumpLine consumes one line break of raw length n.
func (l *Lexer) bumpLine(n int) {
	l.off += n
	l.line++
	l.col = 1
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// Next returns the next token, or TokenEOF at end of input. Whitespace
// between tokens is skipped.
func (l *Lexer) Next() (Token, error) {
	for l.off < len(l.src) {
		if br, ok := l.lineBreakAt(l.off); ok {
			l.bumpLine(len(br))
			continue
		}
		c := l.src[l.off]
		if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
			l.bump(1)
			continue
		}
		break
	}
	pos := l.pos()
	if l.off >= len(l.src) {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}
	switch c := l.src[l.off]; {
	case c == '(':
		l.bump(1)
		return Token{Kind: TokenTreeOpen, Pos: pos}, nil
	case c == ')':
		l.bump(1)
		return Token{Kind: TokenTreeClose, Pos: pos}, nil
	case c == ';':
		l.bump(1)
		return Token{Kind: TokenNodeStart, Pos: pos}, nil
	case c == '[':
		l.bump(1)
		return l.value(pos)
	case isLetter(c):
		start := l.off
		for l.off < len(l.src) && isLetter(l.src[l.off]) {
			l.bump(1)
		}
		return Token{Kind: TokenIdentifier, Text: l.src[start:l.off], Pos: pos}, nil
	default:
		return Token{}, &LexError{
			Code: ErrCodeIllegalIdentifier,
			Pos:  pos,
			Msg:  fmt.Sprintf("illegal character %q (identifiers are ASCII letters)", c),
		}
	}
}

// value scans a bracketed value whose '[' (at openPos) has already been
// consumed, decoding escapes: backslash makes the next character literal,
// backslash before a line break removes the break (soft break), and bare
// line breaks inside the value are preserved.
func (l *Lexer) value(openPos Position) (Token, error) {
	var b strings.Builder
	for l.off < len(l.src) {
		if br, ok := l.lineBreakAt(l.off); ok {
			b.WriteString(br)
			l.bumpLine(len(br))
			continue
		}
		c := l.src[l.off]
		switch c {
		case ']':
			l.bump(1)
			return Token{Kind: TokenValue, Text: b.String(), Pos: openPos}, nil
		case '\\':
			l.bump(1)
			if br, ok := l.lineBreakAt(l.off); ok {
				// soft line break: removed entirely
				l.bumpLine(len(br))
				continue
			}
			if l.off >= len(l.src) {
				break
			}
			b.WriteByte(l.src[l.off])
			l.bump(1)
		default:
			b.WriteByte(c)
			l.bump(1)
		}
	}
	return Token{}, &LexError{
		Code: ErrCodeUnterminatedValue,
		Pos:  openPos,
		Msg:  "unterminated bracketed value",
	}
}
