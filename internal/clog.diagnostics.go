package internal

import "fmt"

// Diagnostic is one advisory parse message
type Diagnostic struct {
	Message  string
	Position Position
}

// String renders the message with its column
func (d Diagnostic) String() string {
	return fmt.Sprintf(DiagFmtAtColumn, d.Message, d.Position.Column)
}

// Diagnostics is an append-only, ordered list of parse messages
type Diagnostics []Diagnostic

// Strings renders every diagnostic
func (d Diagnostics) Strings() []string {
	out := make([]string, len(d))
	for i, diag := range d {
		out[i] = diag.String()
	}
	return out
}

// SpellCast records one spell name seen in a pipeline
type SpellCast struct {
	Name     string
	Position Position
	Known    bool // a spell with this name was registered at cast time
}
