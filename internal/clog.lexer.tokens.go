package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// TokenKind identifies the lexical class of a token
type TokenKind int

// Token kind constants
const (
	TokenKindText TokenKind = iota
	TokenKindClogStart
	TokenKindClogSimple
	TokenKindRBrace
	TokenKindPipe
	TokenKindWord
	TokenKindLParen
	TokenKindRParen
	TokenKindComma
	TokenKindDollar
	TokenKindAt
	TokenKindNumber
	TokenKindDot
	TokenKindQuote
	TokenKindLBracket
	TokenKindRBracket
	TokenKindString
)

var tokenKindNames = [...]string{
	TokenKindText:       "TEXT",
	TokenKindClogStart:  "CLOG_START",
	TokenKindClogSimple: "CLOG_SIMPLE",
	TokenKindRBrace:     "RBRACE",
	TokenKindPipe:       "PIPE",
	TokenKindWord:       "WORD",
	TokenKindLParen:     "LPAREN",
	TokenKindRParen:     "RPAREN",
	TokenKindComma:      "COMMA",
	TokenKindDollar:     "DOLLAR",
	TokenKindAt:         "AT",
	TokenKindNumber:     "NUMBER",
	TokenKindDot:        "DOT",
	TokenKindQuote:      "QUOTE",
	TokenKindLBracket:   "LBRACKET",
	TokenKindRBracket:   "RBRACKET",
	TokenKindString:     "STRING",
}

// String returns the kind's name
func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenKindNames[k]
}

// Token is an immutable lexical token produced by the TokenStream
type Token struct {
	Kind     TokenKind
	Text     string   // Token text; unescaped content for TokenKindString
	Number   int64    // Numeric value, valid when HasValue is true
	HasValue bool     // True for NUMBER tokens whose digits fit in an int64
	Spaced   bool     // True when whitespace preceded the token
	Position Position // Start of the token in the source
	End      int      // Byte offset just past the token
}

// Is reports whether the token is non-nil and of the given kind
func (t *Token) Is(kind TokenKind) bool {
	return t != nil && t.Kind == kind
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("Token{%s @ %s}", t.Kind, t.Position)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Kind, t.Text, t.Position)
}

// describeToken returns the token text used in diagnostics
func describeToken(t *Token) string {
	if t == nil {
		return StringValueNull
	}
	return t.Text
}
