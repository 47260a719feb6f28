// Package clog formats strings from templates with embedded expressions.
//
// A template is plain text with clogs, placeholder blocks opened by #{ and
// closed by }:
//
//	clog.Format("Hello #{}!", "World")
//	// "Hello World!"
//
// # Reagents
//
// Every clog starts from one value, its reagent:
//
//	#{}        the next unused parameter
//	#{$2}      the second parameter
//	#{@1}      the result of the first clog of this template
//	#{"text"}  a string; \" and \\ are escapes
//	#{42}      an integer
//	#{3.05}    a float
//	#{true}    a boolean (case-insensitive)
//	#{null}    an explicit null
//
// Parameter and result references may be indexed:
//
//	#{$1[0]}        first element of a sequence
//	#{$1[name]}     map key, struct field or Get("name") accessor
//	#{$1["a key"]}  same, with any key text
//
// # Spells
//
// The reagent can be piped through spells, each optionally indexed:
//
//	#{$1|trim|upper}
//	#{$1|replace("-", " ")|split(" ")[0]}
//
// Several spells may share a name. They are tried in registration order and
// the first one that answers with a non-null value wins, so a host spell can
// add support for a type the standard spell ignores:
//
//	f := clog.MustNew()
//	f.MustRegisterSpell("upper", func(subject clog.Value, _ []clog.Value) (clog.Value, error) {
//	    if id, ok := subject.Interface().(UserID); ok {
//	        return clog.String(strings.ToUpper(id.Handle())), nil
//	    }
//	    return clog.Null(), nil
//	})
//
// # Errors
//
// Format never fails. A clog that cannot be parsed is copied to the output
// as typed, and a diagnostic is recorded. Use Evaluate to see diagnostics,
// or Validate to check a template ahead of time:
//
//	eval := f.Evaluate("#{$1", "x")
//	// eval.Output == "#{$1"
//	// eval.Err() reports "Expecting '}' after clog, got 'null' (at column 5)"
//
// Unknown spells and out-of-range references are not syntax problems: they
// resolve to null, which renders as nothing.
package clog
