package clog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	f := MustNew()

	tests := []struct {
		name     string
		template string
		errors   int
		warnings int
	}{
		{name: "plain text", template: "hello"},
		{name: "valid clogs", template: "#{} #{$1|upper} #{@1[0]}"},
		{name: "unterminated clog", template: "#{$1", errors: 1},
		{name: "missing reagent", template: "a #{|upper} b", errors: 1},
		{name: "unknown spell", template: "#{$1|uper}", warnings: 1},
		{name: "both", template: "#{$1|nope} #{$", errors: 1, warnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.Validate(tt.template)
			assert.Len(t, result.Errors(), tt.errors)
			assert.Len(t, result.Warnings(), tt.warnings)
			assert.Len(t, result.Issues(), tt.errors+tt.warnings)
			assert.Equal(t, tt.errors == 0, result.IsValid())
			assert.Equal(t, tt.warnings > 0, result.HasWarnings())
		})
	}
}

func TestValidate_Suggestions(t *testing.T) {
	f := MustNew()

	result := f.Validate("Hi #{$1|uper}")
	require.Len(t, result.Warnings(), 1)

	issue := result.Warnings()[0]
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, "uper", issue.SpellName)
	assert.Equal(t, ErrMsgUnknownSpellInTemplate, issue.Message)
	assert.Contains(t, issue.Suggestions, "upper")
	assert.Equal(t, 1, issue.Position.Line)
}

func TestValidate_ErrorPosition(t *testing.T) {
	f := MustNew()

	result := f.Validate("#{$1")
	require.True(t, result.HasErrors())
	assert.Equal(t, 5, result.Errors()[0].Position.Column)
}
