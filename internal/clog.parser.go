package internal

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ParserConfig carries the collaborators a Parser evaluates against
type ParserConfig struct {
	Registry     *SpellRegistry
	AllowPrivate bool // let indexers read unexported struct fields
	Logger       *zap.Logger
}

// ParseResult is everything one evaluation produced
type ParseResult struct {
	Output      string
	Results     []Value
	Diagnostics Diagnostics
	Casts       []SpellCast
}

// Parser evaluates one template against one parameter list. It holds all
// per-call state and is used once; create a new Parser for every call.
//
// Every grammar rule returns (value, matched). A rule that does not match
// pushes back the tokens it consumed, so the caller can try an alternative.
type Parser struct {
	stream       *TokenStream
	params       []Value
	results      []Value
	autoCursor   int
	diagnostics  Diagnostics
	casts        []SpellCast
	output       strings.Builder
	registry     *SpellRegistry
	allowPrivate bool
	logger       *zap.Logger
}

// NewParser creates a parser over source with 1-indexed params
func NewParser(source string, params []Value, cfg ParserConfig) *Parser {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = NewSpellRegistry(logger)
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldParams, len(params)))
	return &Parser{
		stream:       NewTokenStream(source, logger),
		params:       params,
		registry:     registry,
		allowPrivate: cfg.AllowPrivate,
		logger:       logger,
	}
}

// Parse runs the template to the end. It never fails: malformed clogs are
// reported as diagnostics and copied to the output as literal text.
func (p *Parser) Parse() *ParseResult {
	p.logger.Debug(LogMsgFormatStart, zap.Int(LogFieldSource, len(p.stream.source)), zap.Int(LogFieldParams, len(p.params)))

	for p.stream.HasTokens() {
		p.any()
		if p.stream.HasTokens() {
			p.clog()
		}
	}

	p.logger.Debug(LogMsgFormatEnd,
		zap.Int(LogFieldClogs, len(p.results)),
		zap.Int(LogFieldDiagnostics, len(p.diagnostics)),
	)
	return &ParseResult{
		Output:      p.output.String(),
		Results:     p.results,
		Diagnostics: p.diagnostics,
		Casts:       p.casts,
	}
}

// any ::= <run of characters not starting a placeholder>
func (p *Parser) any() {
	p.output.WriteString(p.stream.GetAny().Text)
}

// clog ::= CLOG_START reagent spellbook RBRACE | CLOG_SIMPLE RBRACE
func (p *Parser) clog() {
	open := p.stream.Get()
	mark := len(p.diagnostics)

	switch {
	case open.Is(TokenKindClogStart):
		value, ok := p.reagent()
		if !ok {
			if len(p.diagnostics) == mark {
				p.expected(DiagFmtExpectReagent, p.peek())
			}
			p.unclog(open)
			return
		}
		if value, ok = p.spellbook(value); !ok {
			p.unclog(open)
			return
		}
		if closer := p.stream.Get(); !closer.Is(TokenKindRBrace) {
			p.stream.Unget(closer)
			p.expected(DiagFmtExpectClose, closer)
			p.unclog(open)
			return
		}
		p.succeed(value)

	case open.Is(TokenKindClogSimple):
		value, _ := p.autoParam()
		if closer := p.stream.Get(); !closer.Is(TokenKindRBrace) {
			p.stream.Unget(closer)
			p.expected(DiagFmtExpectSimpleClose, closer)
			p.unclog(open)
			return
		}
		p.succeed(value)

	default:
		// GetAny stops only at a clog opening; keep anything else as text.
		if open != nil {
			p.output.WriteString(open.Text)
		}
	}
}

// succeed records a resolved clog and renders it
func (p *Parser) succeed(value Value) {
	p.results = append(p.results, value)
	if !value.IsNull() {
		p.output.WriteString(value.String())
	}
}

// unclog gives the failed clog back as literal text. The clog still takes
// its slot in the results list.
func (p *Parser) unclog(open *Token) {
	text := p.stream.Unclog(open)
	p.output.WriteString(text.Text)
	p.results = append(p.results, Null())

	if ce := p.logger.Check(zap.DebugLevel, LogMsgClogRecovered); ce != nil {
		fields := []zap.Field{zap.Int(LogFieldColumn, text.Position.Column), zap.Int(LogFieldLine, text.Position.Line)}
		if n := len(p.diagnostics); n > 0 {
			fields = append(fields, zap.String(LogFieldMessage, p.diagnostics[n-1].Message))
		}
		ce.Write(fields...)
	}
}

// spellbook ::= (PIPE castSpell indexer?)*
func (p *Parser) spellbook(value Value) (Value, bool) {
	for {
		pipe := p.stream.Get()
		if !pipe.Is(TokenKindPipe) {
			p.stream.Unget(pipe)
			return value, true
		}

		cast, ok := p.castSpell(value)
		if !ok {
			return Null(), false
		}
		if value, ok = p.indexer(cast); !ok {
			return Null(), false
		}
	}
}

// castSpell ::= WORD (LPAREN reagentList? RPAREN)?
func (p *Parser) castSpell(subject Value) (Value, bool) {
	name := p.stream.Get()
	if !name.Is(TokenKindWord) {
		p.stream.Unget(name)
		p.expected(DiagFmtExpectSpellName, name)
		return Null(), false
	}

	var args []Value
	lparen := p.stream.Get()
	if lparen.Is(TokenKindLParen) {
		list, ok := p.reagentList()
		if !ok {
			return Null(), false
		}
		rparen := p.stream.Get()
		if !rparen.Is(TokenKindRParen) {
			p.stream.Unget(rparen)
			p.stream.Unget(lparen)
			p.stream.Unget(name)
			p.expected(DiagFmtExpectRParen, rparen)
			return Null(), false
		}
		args = list
	} else {
		p.stream.Unget(lparen)
	}

	p.casts = append(p.casts, SpellCast{
		Name:     name.Text,
		Position: name.Position,
		Known:    p.registry.Has(name.Text),
	})
	return p.registry.Invoke(name.Text, subject, args), true
}

// reagentList ::= reagent (COMMA reagent)*
//
// An empty list matches, unless the first reagent attempt reported a
// problem of its own.
func (p *Parser) reagentList() ([]Value, bool) {
	mark := len(p.diagnostics)
	first, ok := p.reagent()
	if !ok {
		return nil, len(p.diagnostics) == mark
	}

	args := []Value{first}
	for {
		comma := p.stream.Get()
		if !comma.Is(TokenKindComma) {
			p.stream.Unget(comma)
			return args, true
		}

		mark = len(p.diagnostics)
		next, ok := p.reagent()
		if !ok {
			if len(p.diagnostics) == mark {
				p.expected(DiagFmtExpectArgument, p.peek())
			}
			return nil, false
		}
		args = append(args, next)
	}
}

// reagent ::= (param | result) indexer?
//
//	| booleanLit | doubleLit | integerLit | stringLit | nullLit | autoParam
func (p *Parser) reagent() (Value, bool) {
	if v, ok := p.param(); ok {
		return p.indexer(v)
	}
	if v, ok := p.result(); ok {
		return p.indexer(v)
	}
	if v, ok := p.booleanLit(); ok {
		return v, true
	}
	if v, ok := p.doubleLit(); ok {
		return v, true
	}
	if v, ok := p.integerLit(); ok {
		return v, true
	}
	if v, ok := p.stringLit(); ok {
		return v, true
	}
	if v, ok := p.nullLit(); ok {
		return v, true
	}
	return p.autoParam()
}

// param ::= '$' NUMBER
func (p *Parser) param() (Value, bool) {
	dollar := p.stream.Get()
	if !dollar.Is(TokenKindDollar) {
		p.stream.Unget(dollar)
		return Null(), false
	}

	num := p.stream.Get()
	if !num.Is(TokenKindNumber) || !num.HasValue {
		p.stream.Unget(num)
		p.stream.Unget(dollar)
		p.expected(DiagFmtExpectParamNumber, num)
		return Null(), false
	}

	p.autoCursor++
	return nth(p.params, num.Number), true
}

// result ::= '@' NUMBER
func (p *Parser) result() (Value, bool) {
	at := p.stream.Get()
	if !at.Is(TokenKindAt) {
		p.stream.Unget(at)
		return Null(), false
	}

	num := p.stream.Get()
	if !num.Is(TokenKindNumber) || !num.HasValue {
		p.stream.Unget(num)
		p.stream.Unget(at)
		p.expected(DiagFmtExpectResultNum, num)
		return Null(), false
	}

	return nth(p.results, num.Number), true
}

// booleanLit ::= WORD("true" | "false"), case-insensitive
func (p *Parser) booleanLit() (Value, bool) {
	word := p.stream.Get()
	if word.Is(TokenKindWord) {
		switch {
		case strings.EqualFold(word.Text, KeywordTrue):
			return Bool(true), true
		case strings.EqualFold(word.Text, KeywordFalse):
			return Bool(false), true
		}
	}
	p.stream.Unget(word)
	return Null(), false
}

// doubleLit ::= NUMBER '.' NUMBER, with nothing between the three tokens.
// The literal is read from the token text so "3.05" keeps its zero.
func (p *Parser) doubleLit() (Value, bool) {
	whole := p.stream.Get()
	if !whole.Is(TokenKindNumber) {
		p.stream.Unget(whole)
		return Null(), false
	}

	dot := p.stream.Get()
	if !dot.Is(TokenKindDot) || dot.Spaced {
		p.stream.Unget(dot)
		p.stream.Unget(whole)
		return Null(), false
	}

	frac := p.stream.Get()
	if !frac.Is(TokenKindNumber) || frac.Spaced {
		p.stream.Unget(frac)
		p.stream.Unget(dot)
		p.stream.Unget(whole)
		return Null(), false
	}

	f, err := strconv.ParseFloat(whole.Text+string(CharDot)+frac.Text, FloatBitSize64)
	if err != nil {
		p.stream.Unget(frac)
		p.stream.Unget(dot)
		p.stream.Unget(whole)
		return Null(), false
	}
	return Float(f), true
}

// integerLit ::= NUMBER
func (p *Parser) integerLit() (Value, bool) {
	num := p.stream.Get()
	if !num.Is(TokenKindNumber) || !num.HasValue {
		p.stream.Unget(num)
		return Null(), false
	}
	return Int(num.Number), true
}

// stringLit ::= '"' <text> '"'
func (p *Parser) stringLit() (Value, bool) {
	quote := p.stream.Get()
	if !quote.Is(TokenKindQuote) {
		p.stream.Unget(quote)
		return Null(), false
	}

	content := p.stream.GetString()
	if content == nil {
		p.stream.Unget(quote)
		p.diagnose(DiagMsgUnclosedString)
		return Null(), false
	}

	closing := p.stream.Get()
	if !closing.Is(TokenKindQuote) {
		p.stream.Unget(closing)
		p.stream.Unget(content)
		p.stream.Unget(quote)
		p.diagnose(DiagMsgUnclosedString)
		return Null(), false
	}

	return String(content.Text), true
}

// nullLit ::= WORD("null"), case-insensitive
func (p *Parser) nullLit() (Value, bool) {
	word := p.stream.Get()
	if word.Is(TokenKindWord) && strings.EqualFold(word.Text, KeywordNull) {
		return ExplicitNull(), true
	}
	p.stream.Unget(word)
	return Null(), false
}

// autoParam matches only right before the closing brace. Every match
// advances the auto cursor, even when it runs past the last param.
func (p *Parser) autoParam() (Value, bool) {
	next := p.stream.Get()
	p.stream.Unget(next)
	if !next.Is(TokenKindRBrace) {
		return Null(), false
	}

	p.autoCursor++
	return nth(p.params, int64(p.autoCursor)), true
}

// indexer ::= '[' NUMBER ']' | '[' WORD ']' | '[' stringLit ']'
//
// A missing indexer matches and leaves value untouched.
func (p *Parser) indexer(value Value) (Value, bool) {
	open := p.stream.Get()
	if !open.Is(TokenKindLBracket) {
		p.stream.Unget(open)
		return value, true
	}

	var indexed Value
	key := p.stream.Get()
	switch {
	case key.Is(TokenKindNumber) && key.HasValue:
		indexed = IndexByInt(value, key.Number)
	case key.Is(TokenKindWord):
		indexed = IndexByKey(value, key.Text, p.allowPrivate)
	case key.Is(TokenKindQuote):
		p.stream.Unget(key)
		s, ok := p.stringLit()
		if !ok {
			p.stream.Unget(open)
			return Null(), false
		}
		text, _ := s.AsString()
		indexed = IndexByKey(value, text, p.allowPrivate)
	default:
		p.stream.Unget(key)
		p.stream.Unget(open)
		p.expected(DiagFmtExpectRBracket, key)
		return Null(), false
	}

	closing := p.stream.Get()
	if !closing.Is(TokenKindRBracket) {
		p.stream.Unget(closing)
		p.stream.Unget(open)
		p.expected(DiagFmtExpectRBracket, closing)
		return Null(), false
	}
	return indexed, true
}

// Helper methods

// peek returns the next token without consuming it
func (p *Parser) peek() *Token {
	tok := p.stream.Get()
	p.stream.Unget(tok)
	return tok
}

// expected records a diagnostic naming the offending token
func (p *Parser) expected(format string, got *Token) {
	p.diagnose(fmt.Sprintf(format, describeToken(got)))
}

// diagnose records a diagnostic at the current lexing position
func (p *Parser) diagnose(message string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Message:  message,
		Position: p.stream.Position(),
	})
}

// nth returns the 1-indexed element of list, or Null when out of range
func nth(list []Value, index int64) Value {
	if index < 1 || index > int64(len(list)) {
		return Null()
	}
	return list[index-1]
}
