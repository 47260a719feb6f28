package clog

import (
	"github.com/itsatony/go-clog/internal"
)

// Diagnostic is an advisory message about a clog that could not be parsed
type Diagnostic = internal.Diagnostic

// SpellCast records a spell name seen in a template
type SpellCast = internal.SpellCast

// Diagnostics lists the problems found in one evaluation, in source order
type Diagnostics []Diagnostic

// Strings renders every diagnostic with its column
func (d Diagnostics) Strings() []string {
	return internal.Diagnostics(d).Strings()
}

// Err folds the diagnostics into one error, or returns nil when there are
// none. Use it to treat syntax problems as fatal.
func (d Diagnostics) Err() error {
	return NewSyntaxError(d)
}

// Evaluation is the full outcome of formatting one template
type Evaluation struct {
	// Output is the formatted text
	Output string
	// Results holds one value per clog, in order; failed clogs hold Null
	Results []Value
	// Diagnostics lists every clog that fell back to literal text
	Diagnostics Diagnostics
	// Casts lists every spell cast, known or not
	Casts []SpellCast
}

func newEvaluation(r *internal.ParseResult) *Evaluation {
	return &Evaluation{
		Output:      r.Output,
		Results:     r.Results,
		Diagnostics: Diagnostics(r.Diagnostics),
		Casts:       r.Casts,
	}
}

// HasDiagnostics reports whether any clog failed to parse
func (e *Evaluation) HasDiagnostics() bool {
	return len(e.Diagnostics) > 0
}

// Err returns the diagnostics as an error, or nil
func (e *Evaluation) Err() error {
	return e.Diagnostics.Err()
}
