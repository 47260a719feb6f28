package clog

import (
	"github.com/itsatony/go-clog/internal"
	"go.uber.org/zap"
)

// SpellFunc transforms the pipeline value. Return Null to let the next spell
// registered under the same name answer instead. An error or a panic is
// treated the same as Null.
type SpellFunc = internal.SpellFunc

// Spell is a named transformation usable as `|name` or `|name(args)` in a clog.
type Spell struct {
	Name string
	Fn   SpellFunc
}

// RegisterSpell appends a spell. A name may be registered many times; the
// spells then form a fallback chain in registration order.
//
// Example:
//
//	f.RegisterSpell("shout", func(subject clog.Value, _ []clog.Value) (clog.Value, error) {
//	    s, ok := subject.AsString()
//	    if !ok {
//	        return clog.Null(), nil
//	    }
//	    return clog.String(strings.ToUpper(s) + "!"), nil
//	})
//
// The spell can then be cast in templates:
//
//	#{$1|shout}
func (f *Formatter) RegisterSpell(name string, fn SpellFunc) error {
	if name == "" {
		return NewSpellRegistrationError(ErrMsgSpellEmptyName, name)
	}
	if fn == nil {
		return NewSpellRegistrationError(ErrMsgSpellNilFunc, name)
	}
	if err := f.registry.Register(&internal.Spell{Name: name, Fn: fn}); err != nil {
		return WrapSpellRegistrationError(err, ErrMsgSpellRegisterFail, name)
	}
	return nil
}

// MustRegisterSpell registers a spell and panics on error.
func (f *Formatter) MustRegisterSpell(name string, fn SpellFunc) {
	if err := f.RegisterSpell(name, fn); err != nil {
		panic(err)
	}
}

// AddSpells registers several spells in order. Nothing is registered when
// any of them is invalid.
func (f *Formatter) AddSpells(spells ...Spell) error {
	for _, s := range spells {
		if s.Name == "" {
			return NewSpellRegistrationError(ErrMsgSpellEmptyName, s.Name)
		}
		if s.Fn == nil {
			return NewSpellRegistrationError(ErrMsgSpellNilFunc, s.Name)
		}
	}
	for _, s := range spells {
		if err := f.RegisterSpell(s.Name, s.Fn); err != nil {
			return err
		}
	}
	return nil
}

// HasSpell checks if at least one spell is registered under name.
func (f *Formatter) HasSpell(name string) bool {
	return f.registry.Has(name)
}

// ListSpells returns the distinct spell names in registration order.
func (f *Formatter) ListSpells() []string {
	return f.registry.Names()
}

// SpellCount returns the number of registered spells, counting each
// registration of a shared name.
func (f *Formatter) SpellCount() int {
	return f.registry.Count()
}

// Invoke casts the spell name on subject outside of any template. The
// first non-null answer wins; Null means no spell answered.
func (f *Formatter) Invoke(name string, subject Value, args ...Value) Value {
	return f.registry.Invoke(name, subject, args)
}

// registerAlias adds a spell that forwards to the spells registered under
// target at this point
func (f *Formatter) registerAlias(alias, target string) error {
	if alias == "" {
		return NewSpellRegistrationError(ErrMsgSpellEmptyName, alias)
	}
	if alias == target || !f.registry.Has(target) {
		return NewSpellAliasError(alias, target)
	}
	if err := f.registry.Alias(alias, target); err != nil {
		return WrapSpellRegistrationError(err, ErrMsgSpellRegisterFail, alias)
	}
	f.logger.Debug(LogMsgAliasRegistered, zap.String(LogFieldAlias, alias), zap.String(LogFieldTarget, target))
	return nil
}
