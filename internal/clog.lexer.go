package internal

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TokenStream lexes a template lazily, one token per Get, and supports
// unlimited pushback so the parser can backtrack across multi-token lookahead.
//
// Lexing is context-free: Get always lexes placeholder punctuation, GetAny
// always lexes a literal text run and GetString always lexes quoted content.
// The parser decides which one to call.
type TokenStream struct {
	source   string
	pos      int // Current byte position
	line     int // Current line (1-indexed)
	column   int // Current column (1-indexed)
	pushback []*Token
	logger   *zap.Logger
}

// NewTokenStream creates a token stream over source
func NewTokenStream(source string, logger *zap.Logger) *TokenStream {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgTokenStreamCreated, zap.Int(LogFieldSource, len(source)))
	return &TokenStream{
		source: source,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// HasTokens reports whether any input, pushed back or unread, remains
func (s *TokenStream) HasTokens() bool {
	return len(s.pushback) > 0 || !s.isAtEnd()
}

// Get consumes the next token, consulting the pushback buffer first.
// Returns nil when the stream is exhausted.
func (s *TokenStream) Get() *Token {
	if n := len(s.pushback); n > 0 {
		tok := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return tok
	}

	spaced := s.skipWhitespace()
	if s.isAtEnd() {
		return nil
	}

	start := s.currentPosition()

	if s.matchStr(StrClogOpen) {
		s.advanceN(len(StrClogOpen))
		kind := TokenKindClogStart
		if !s.isAtEnd() && s.peek() == CharRBrace {
			kind = TokenKindClogSimple
		}
		return s.newToken(kind, start, spaced)
	}

	ch := s.peek()
	if kind, ok := punctuation(ch); ok {
		s.advance()
		return s.newToken(kind, start, spaced)
	}

	if isDigit(ch) {
		for !s.isAtEnd() && isDigit(s.peek()) {
			s.advance()
		}
		tok := s.newToken(TokenKindNumber, start, spaced)
		if n, err := strconv.ParseInt(tok.Text, IntBase10, IntBitSize64); err == nil {
			tok.Number = n
			tok.HasValue = true
		}
		return tok
	}

	if r, _ := utf8.DecodeRuneInString(s.source[s.pos:]); isWordStart(r) {
		for !s.isAtEnd() {
			r, _ := utf8.DecodeRuneInString(s.source[s.pos:])
			if !isWordPart(r) {
				break
			}
			s.advance()
		}
		return s.newToken(TokenKindWord, start, spaced)
	}

	// Any other character is handed to the parser as a one-rune text token;
	// no placeholder rule accepts it, so it surfaces in a diagnostic.
	s.advance()
	return s.newToken(TokenKindText, start, spaced)
}

// Unget returns a token to the front of the stream. Nil tokens are ignored so
// callers can unget whatever Get returned without checking.
func (s *TokenStream) Unget(tok *Token) {
	if tok == nil {
		return
	}
	s.pushback = append(s.pushback, tok)
}

// GetAny consumes the maximal run of characters that does not start a
// placeholder and returns it as a single text token (possibly empty).
func (s *TokenStream) GetAny() *Token {
	s.rewindPushback()

	start := s.currentPosition()
	for !s.isAtEnd() && !s.matchStr(StrClogOpen) {
		s.advance()
	}
	return s.newToken(TokenKindText, start, false)
}

// GetString consumes characters up to, but not including, the next unescaped
// double quote. Returns nil when the stream is already exhausted.
func (s *TokenStream) GetString() *Token {
	s.rewindPushback()

	if s.isAtEnd() {
		return nil
	}

	start := s.currentPosition()
	var sb strings.Builder
	for !s.isAtEnd() {
		ch := s.peek()
		if ch == CharDoubleQuote {
			break
		}
		if ch == CharBackslash && s.pos+1 < len(s.source) {
			next := s.source[s.pos+1]
			if next == CharDoubleQuote || next == CharBackslash {
				s.advance()
				sb.WriteByte(next)
				s.advance()
				continue
			}
		}
		from := s.pos
		s.advance()
		sb.WriteString(s.source[from:s.pos])
	}

	return &Token{
		Kind:     TokenKindString,
		Text:     sb.String(),
		Position: start,
		End:      s.pos,
	}
}

// Unclog abandons the placeholder opened by open: everything from open up to
// the earliest token still waiting in the pushback buffer (or the current
// position when the buffer is empty) is returned as literal text, and the
// stream resumes lexing right after it.
func (s *TokenStream) Unclog(open *Token) *Token {
	resume := s.currentPosition()
	for _, tok := range s.pushback {
		if tok.Position.Offset < resume.Offset {
			resume = tok.Position
		}
	}
	s.pushback = s.pushback[:0]

	if open == nil {
		s.seek(resume)
		return s.newToken(TokenKindText, resume, false)
	}
	if resume.Offset < open.End {
		// The opening sequence itself is always given up as text.
		s.seek(open.Position)
		s.advanceN(open.End - open.Position.Offset)
		resume = s.currentPosition()
	}

	s.seek(resume)
	return &Token{
		Kind:     TokenKindText,
		Text:     s.source[open.Position.Offset:resume.Offset],
		Position: open.Position,
		End:      resume.Offset,
	}
}

// Column returns the 1-based column just after the most recently lexed
// character; pushback does not move it.
func (s *TokenStream) Column() int {
	return s.column
}

// Position returns the current lexing position
func (s *TokenStream) Position() Position {
	return s.currentPosition()
}

// rewindPushback moves the lexer back to the earliest pushed-back token and
// drops the buffer, so raw scanners re-read that input.
func (s *TokenStream) rewindPushback() {
	if len(s.pushback) == 0 {
		return
	}
	earliest := s.pushback[0].Position
	for _, tok := range s.pushback[1:] {
		if tok.Position.Offset < earliest.Offset {
			earliest = tok.Position
		}
	}
	s.pushback = s.pushback[:0]
	s.seek(earliest)
}

// newToken builds a token spanning from start to the current position
func (s *TokenStream) newToken(kind TokenKind, start Position, spaced bool) *Token {
	return &Token{
		Kind:     kind,
		Text:     s.source[start.Offset:s.pos],
		Spaced:   spaced,
		Position: start,
		End:      s.pos,
	}
}

// Helper methods

func (s *TokenStream) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *TokenStream) seek(p Position) {
	s.pos = p.Offset
	s.line = p.Line
	s.column = p.Column
}

func (s *TokenStream) isAtEnd() bool {
	return s.pos >= len(s.source)
}

func (s *TokenStream) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// advance consumes one rune, keeping line and column current
func (s *TokenStream) advance() {
	if s.isAtEnd() {
		return
	}
	r, size := utf8.DecodeRuneInString(s.source[s.pos:])
	s.pos += size
	if r == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}

// advanceN advances by n bytes
func (s *TokenStream) advanceN(n int) {
	target := s.pos + n
	for s.pos < target && !s.isAtEnd() {
		s.advance()
	}
}

func (s *TokenStream) matchStr(str string) bool {
	return strings.HasPrefix(s.source[s.pos:], str)
}

// skipWhitespace skips whitespace and reports whether any was skipped
func (s *TokenStream) skipWhitespace() bool {
	skipped := false
	for !s.isAtEnd() {
		switch s.peek() {
		case CharSpace, CharTab, CharNewline, CharCarriageRet:
			s.advance()
			skipped = true
		default:
			return skipped
		}
	}
	return skipped
}

// Character classification helpers

func punctuation(ch byte) (TokenKind, bool) {
	switch ch {
	case CharRBrace:
		return TokenKindRBrace, true
	case CharPipe:
		return TokenKindPipe, true
	case CharLParen:
		return TokenKindLParen, true
	case CharRParen:
		return TokenKindRParen, true
	case CharComma:
		return TokenKindComma, true
	case CharDollar:
		return TokenKindDollar, true
	case CharAt:
		return TokenKindAt, true
	case CharDot:
		return TokenKindDot, true
	case CharDoubleQuote:
		return TokenKindQuote, true
	case CharLBracket:
		return TokenKindLBracket, true
	case CharRBracket:
		return TokenKindRBracket, true
	default:
		return 0, false
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordStart(r rune) bool {
	return r == CharUnderscore || unicode.IsLetter(r)
}

func isWordPart(r rune) bool {
	return isWordStart(r) || unicode.IsDigit(r)
}
