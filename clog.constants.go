package clog

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Registry errors
	ErrMsgSpellEmptyName    = "spell name cannot be empty"
	ErrMsgSpellNilFunc      = "spell function cannot be nil"
	ErrMsgSpellAliasTarget  = "spell alias must target another registered spell"
	ErrMsgSpellRegisterFail = "spell registration failed"

	// Configuration errors
	ErrMsgConfigReadFailed   = "failed to read config file"
	ErrMsgConfigParseFailed  = "failed to parse config"
	ErrMsgConfigInvalidLevel = "invalid log level"
	ErrMsgConfigEmptyAlias   = "spell alias name cannot be empty"

	// Diagnostic errors
	ErrMsgTemplateDiagnostics = "template has syntax problems"

	// Validation messages
	ErrMsgUnknownSpellInTemplate = "no spell registered with this name"
)

// Error code constants for categorization
const (
	ErrCodeRegistry = "CLOG_REGISTRY"
	ErrCodeConfig   = "CLOG_CONFIG"
	ErrCodeSyntax   = "CLOG_SYNTAX"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine        = "line"
	MetaKeyColumn      = "column"
	MetaKeyOffset      = "offset"
	MetaKeySpellName   = "spell_name"
	MetaKeyAliasTarget = "alias_target"
	MetaKeyPath        = "path"
	MetaKeyValue       = "value"
	MetaKeyCount       = "count"
	MetaKeyDiagnostics = "diagnostics"
)

// Log message constants
const (
	LogMsgFormatterCreated = "formatter created"
	LogMsgAliasRegistered  = "spell alias registered"
	LogMsgPrivateFields    = "private field access changed"
	LogMsgConfigLoaded     = "config loaded"
)

// Log field constants
const (
	LogFieldSpellCount = "spell_count"
	LogFieldAlias      = "alias"
	LogFieldTarget     = "target"
	LogFieldEnabled    = "enabled"
	LogFieldPath       = "path"
	LogFieldTag        = "tag"
)

// Default values
const (
	DefaultMaxSuggestions  = 3
	DefaultLogLevel        = "info"
	DefaultStandardSpells  = true
	DefaultPrivateFields   = false
	DiagnosticsJoinPattern = "; "
)

// ValidationSeverity indicates the severity of a validation issue.
type ValidationSeverity int

const (
	// SeverityError marks a clog that will be copied out verbatim
	SeverityError ValidationSeverity = iota
	// SeverityWarning marks something that formats but is likely a mistake
	SeverityWarning
	// SeverityInfo indicates informational feedback
	SeverityInfo
)

// Validation severity string names
const (
	SeverityNameError   = "error"
	SeverityNameWarning = "warning"
	SeverityNameInfo    = "info"
)

// String returns the string representation of the validation severity
func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return SeverityNameError
	case SeverityWarning:
		return SeverityNameWarning
	case SeverityInfo:
		return SeverityNameInfo
	default:
		return SeverityNameError
	}
}
