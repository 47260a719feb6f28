package clog

import (
	"sync/atomic"

	"github.com/itsatony/go-clog/internal"
	"go.uber.org/zap"
)

// Formatter is the main entry point: it owns a spellbook and formats
// templates against positional parameters.
//
// Formatting is safe for concurrent use. Every call gets its own parser
// state; only the spellbook is shared.
type Formatter struct {
	registry      *internal.SpellRegistry
	privateFields atomic.Bool
	logger        *zap.Logger
}

// New creates a new Formatter with the given options.
func New(opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Formatter{
		registry: internal.NewSpellRegistry(logger),
		logger:   logger,
	}
	f.privateFields.Store(config.privateFields)

	if config.standardSpells {
		internal.RegisterStandardSpells(f.registry)
	}
	if err := f.AddSpells(config.spells...); err != nil {
		return nil, err
	}
	for _, a := range config.aliases {
		if err := f.registerAlias(a.alias, a.target); err != nil {
			return nil, err
		}
	}

	logger.Debug(LogMsgFormatterCreated, zap.Int(LogFieldSpellCount, f.registry.Count()))
	return f, nil
}

// MustNew creates a new Formatter and panics if there's an error.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Format evaluates template against params and returns the output. It
// never fails: malformed clogs are copied to the output verbatim. Params
// are converted with ValueOf.
func (f *Formatter) Format(template string, params ...any) string {
	return f.FormatValues(template, valuesOf(params))
}

// FormatValues is Format for parameters that are already Values.
func (f *Formatter) FormatValues(template string, params []Value) string {
	return f.evaluate(template, params).Output
}

// Evaluate is Format that also reports diagnostics, per-clog results and the
// spells that were cast.
func (f *Formatter) Evaluate(template string, params ...any) *Evaluation {
	return f.evaluate(template, valuesOf(params))
}

// EvaluateValues is Evaluate for parameters that are already Values.
func (f *Formatter) EvaluateValues(template string, params []Value) *Evaluation {
	return f.evaluate(template, params)
}

func (f *Formatter) evaluate(template string, params []Value) *Evaluation {
	parser := internal.NewParser(template, params, internal.ParserConfig{
		Registry:     f.registry,
		AllowPrivate: f.privateFields.Load(),
		Logger:       f.logger,
	})
	return newEvaluation(parser.Parse())
}

// SetPrivateFieldsAccessible toggles whether indexers may read unexported
// struct fields (and PrivateFieldRecord fields). Takes effect on the next
// Format call.
func (f *Formatter) SetPrivateFieldsAccessible(enabled bool) {
	f.privateFields.Store(enabled)
	f.logger.Debug(LogMsgPrivateFields, zap.Bool(LogFieldEnabled, enabled))
}

// PrivateFieldsAccessible reports the current private field policy.
func (f *Formatter) PrivateFieldsAccessible() bool {
	return f.privateFields.Load()
}
