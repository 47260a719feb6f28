package clog

import (
	"github.com/itsatony/go-clog/internal"
)

// ValidationResult contains the results of template validation.
type ValidationResult struct {
	issues []ValidationIssue
}

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity    ValidationSeverity
	Message     string
	Position    Position
	SpellName   string
	Suggestions []string // Similar registered spell names
}

// Issues returns all validation issues found.
func (r *ValidationResult) Issues() []ValidationIssue {
	return r.issues
}

// Errors returns only issues with error severity.
func (r *ValidationResult) Errors() []ValidationIssue {
	return r.filter(SeverityError)
}

// Warnings returns only issues with warning severity.
func (r *ValidationResult) Warnings() []ValidationIssue {
	return r.filter(SeverityWarning)
}

func (r *ValidationResult) filter(severity ValidationSeverity) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// HasErrors returns true if there are any error-severity issues.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if there are any warning-severity issues.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// IsValid returns true if there are no error-severity issues.
func (r *ValidationResult) IsValid() bool {
	return !r.HasErrors()
}

// Validate checks a template without parameters. Clogs that would be copied
// out verbatim are errors; spells with no registered name are warnings
// carrying did-you-mean suggestions.
//
// Validation runs the template, so spells are cast on Null parameters.
func (f *Formatter) Validate(template string) *ValidationResult {
	eval := f.evaluate(template, nil)
	result := &ValidationResult{
		issues: make([]ValidationIssue, 0, len(eval.Diagnostics)),
	}

	for _, d := range eval.Diagnostics {
		result.issues = append(result.issues, ValidationIssue{
			Severity: SeverityError,
			Message:  d.Message,
			Position: d.Position,
		})
	}

	names := f.registry.Names()
	for _, cast := range eval.Casts {
		if cast.Known {
			continue
		}
		result.issues = append(result.issues, ValidationIssue{
			Severity:    SeverityWarning,
			Message:     ErrMsgUnknownSpellInTemplate,
			Position:    cast.Position,
			SpellName:   cast.Name,
			Suggestions: internal.FindSimilarStrings(cast.Name, names, DefaultMaxSuggestions),
		})
	}

	return result
}
