package internal

// Character constants
const (
	CharHash        = '#'
	CharLBrace      = '{'
	CharRBrace      = '}'
	CharPipe        = '|'
	CharLParen      = '('
	CharRParen      = ')'
	CharComma       = ','
	CharDollar      = '$'
	CharAt          = '@'
	CharDot         = '.'
	CharDoubleQuote = '"'
	CharLBracket    = '['
	CharRBracket    = ']'
	CharBackslash   = '\\'
	CharUnderscore  = '_'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
)

// String constants for placeholder matching
const (
	StrClogOpen = string(CharHash) + string(CharLBrace)
)

// Literal keywords recognized inside a clog (case-insensitive)
const (
	KeywordTrue  = "true"
	KeywordFalse = "false"
	KeywordNull  = "null"
)

// String value constants used when rendering values
const (
	StringValueEmpty = ""
	StringValueTrue  = "true"
	StringValueFalse = "false"
	StringValueNull  = "null"
)

// Numeric constants for conversions
const (
	FloatFormatFlag   = 'f'
	FloatPrecisionAll = -1
	FloatBitSize64    = 64
	IntBase10         = 10
	IntBitSize64      = 64
)

// Rendering punctuation for structured values
const (
	RenderSeqOpen   = "["
	RenderSeqClose  = "]"
	RenderMapOpen   = "{"
	RenderMapClose  = "}"
	RenderSeparator = ", "
	RenderKeyValue  = "="
)

// AccessorMethodName is the conventional single-argument accessor looked up on records.
const AccessorMethodName = "Get"

// Diagnostic message formats. The %s verb receives the offending token's text
// (or "null" when the stream was exhausted).
const (
	DiagFmtExpectClose       = "Expecting '}' after clog, got '%s'"
	DiagFmtExpectSimpleClose = "Expecting '}' after simple clog, got '%s'"
	DiagFmtExpectRParen      = "Expecting ')' after param list, got '%s'"
	DiagFmtExpectParamNumber = "Expecting a number after '$', got '%s'"
	DiagFmtExpectResultNum   = "Expecting a number after '@', got '%s'"
	DiagFmtExpectReagent     = "Expecting a value after '#{', got '%s'"
	DiagFmtExpectSpellName   = "Expecting a spell name after '|', got '%s'"
	DiagFmtExpectRBracket    = "Expecting ']' after index, got '%s'"
	DiagFmtExpectArgument    = "Expecting a value after ',', got '%s'"
	DiagMsgUnclosedString    = "String literal is never closed"
	DiagFmtAtColumn          = "%s (at column %d)"
)

// Log message constants
const (
	LogMsgTokenStreamCreated = "token stream created"
	LogMsgParserCreated      = "parser created"
	LogMsgFormatStart        = "starting format"
	LogMsgFormatEnd          = "format complete"
	LogMsgClogRecovered      = "clog recovered as literal text"
	LogMsgRegistryCreated    = "spell registry created"
	LogMsgSpellRegistered    = "spell registered"
	LogMsgSpellFailed        = "spell failed, treating as no answer"
	LogMsgSpellPanicked      = "spell panicked, treating as no answer"
	LogMsgSpellNotFound      = "no spell answered"
)

// Log field names
const (
	LogFieldSource      = "source_length"
	LogFieldParams      = "param_count"
	LogFieldClogs       = "clog_count"
	LogFieldDiagnostics = "diagnostic_count"
	LogFieldColumn      = "column"
	LogFieldLine        = "line"
	LogFieldMessage     = "message"
	LogFieldSpell       = "spell"
	LogFieldSpellCount  = "spell_count"
	LogFieldSuggestions = "suggestions"
	LogFieldPanic       = "panic"
)

// DefaultMaxSuggestions bounds the did-you-mean list for unknown spell names.
const DefaultMaxSuggestions = 3
