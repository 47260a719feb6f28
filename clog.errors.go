package clog

import (
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// NewSpellRegistrationError creates an error for a spell that cannot be registered
func NewSpellRegistrationError(msg, spellName string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, msg).
		WithMetadata(MetaKeySpellName, spellName)
}

// WrapSpellRegistrationError wraps a registry failure for spellName
func WrapSpellRegistrationError(cause error, msg, spellName string) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, msg).
		WithMetadata(MetaKeySpellName, spellName)
}

// NewSpellAliasError creates an error for an alias whose target is not registered
func NewSpellAliasError(alias, target string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgSpellAliasTarget).
		WithMetadata(MetaKeySpellName, alias).
		WithMetadata(MetaKeyAliasTarget, target)
}

// NewConfigError creates a configuration error, wrapping cause when present
func NewConfigError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	}
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}

// NewConfigFileError creates a configuration error for a file path
func NewConfigFileError(msg, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewConfigValueError creates an error for an invalid configuration value
func NewConfigValueError(msg, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyValue, value)
}

// NewSyntaxError folds template diagnostics into one error. Position
// metadata comes from the first diagnostic.
func NewSyntaxError(diags Diagnostics) error {
	if len(diags) == 0 {
		return nil
	}
	first := diags[0].Position
	return cuserr.NewValidationError(ErrCodeSyntax, ErrMsgTemplateDiagnostics).
		WithMetadata(MetaKeyLine, strconv.Itoa(first.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(first.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(first.Offset)).
		WithMetadata(MetaKeyCount, strconv.Itoa(len(diags))).
		WithMetadata(MetaKeyDiagnostics, strings.Join(diags.Strings(), DiagnosticsJoinPattern))
}
