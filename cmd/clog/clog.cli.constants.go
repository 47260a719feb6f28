package main

// Command names
const (
	CmdNameFormat   = "format"
	CmdNameValidate = "validate"
	CmdNameSpells   = "spells"
	CmdNameVersion  = "version"
)

// Flag names - long form
const (
	FlagTemplate    = "template"
	FlagInline      = "inline"
	FlagParam       = "param"
	FlagParamsFile  = "params-file"
	FlagConfig      = "config"
	FlagOutput      = "output"
	FlagDiagnostics = "diagnostics"
	FlagFormat      = "format"
	FlagStrictMode  = "strict"
	FlagNoColor     = "no-color"
)

// Flag names - short form
const (
	FlagTemplateShort    = "t"
	FlagInlineShort      = "e"
	FlagParamShort       = "p"
	FlagParamsFileShort  = "f"
	FlagConfigShort      = "c"
	FlagOutputShort      = "o"
	FlagDiagnosticsShort = "d"
	FlagFormatShort      = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate   = "template source required (--template or --inline)"
	ErrMsgBothTemplates     = "--template and --inline are mutually exclusive"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgParamsFileFailed  = "failed to load params file"
	ErrMsgParamsNotSequence = "params file must hold a YAML sequence"
	ErrMsgConfigFailed      = "failed to load config"
	ErrMsgFormatterFailed   = "failed to create formatter"
	ErrMsgLoggerFailed      = "failed to create logger"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Help text
const (
	HelpRootShort = "Format strings with clog templates"
	HelpRootLong  = `clog - string formatting with embedded #{...} expressions

A clog is a placeholder such as #{}, #{$2|upper} or #{$1[name]|default("?")}.
Malformed clogs are copied to the output unchanged.`

	HelpFormatShort   = "Format a template with parameters"
	HelpFormatExample = `  clog format -e 'Hello #{}!' -p World
  clog format -t greeting.txt -f params.yaml
  echo 'Total: #{$1|plus($2)}' | clog format -t - -p 40 -p 2
  clog format -e '#{$1' --diagnostics`

	HelpValidateShort   = "Check a template for syntax errors and unknown spells"
	HelpValidateExample = `  clog validate -t template.txt
  clog validate -e '#{$1|uper}' --strict
  cat template.txt | clog validate -t - -F json`

	HelpSpellsShort   = "List registered spell names"
	HelpVersionShort  = "Show version information"
	HelpFlagTemplate  = "template file (use \"-\" for stdin)"
	HelpFlagInline    = "template text"
	HelpFlagParam     = "positional parameter, decoded as a YAML scalar (repeatable)"
	HelpFlagParams    = "YAML file holding a sequence of parameters"
	HelpFlagConfig    = "YAML config file"
	HelpFlagOutput    = "output file (default: stdout)"
	HelpFlagDiag      = "print diagnostics to stderr"
	HelpFlagFormat    = "output format: text, json"
	HelpFlagStrict    = "treat warnings as errors"
	HelpFlagNoColor   = "disable coloured output"
)

// Version output format templates
const (
	VersionTextTemplate = "go-clog version %s\nCommit: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueIndent  = "  "
	ValidationTextSpellFormat  = " (spell %q)"
	ValidationTextSuggestions  = "\n      did you mean: %s"
	ValidationTextErrorSummary = "%d error(s), %d warning(s)"
	DiagnosticTextFormat       = "%s at line %d, column %d"
	SeverityLabelFormat        = "[%s] "
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
	SeverityNameInfo    = "INFO"
)

// Build info settings read by the version command
const (
	BuildSettingRevision = "vcs.revision"
	BuildSettingTime     = "vcs.time"
)

// CLI metadata
const (
	CLIName = "clog"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JoinSuggestions    = ", "
	JSONIndent         = "  "
)
