package clog

import "sync"

var (
	defaultOnce      sync.Once
	defaultFormatter *Formatter
)

// Default returns the process-wide Formatter, created on first use with the
// standard spellbook. Register spells on it during start-up; formatting from
// many goroutines afterwards is safe.
func Default() *Formatter {
	defaultOnce.Do(func() {
		defaultFormatter = MustNew()
	})
	return defaultFormatter
}

// Format formats template with the default Formatter.
func Format(template string, params ...any) string {
	return Default().Format(template, params...)
}

// RegisterSpell adds a spell to the default Formatter.
func RegisterSpell(name string, fn SpellFunc) error {
	return Default().RegisterSpell(name, fn)
}

// AddSpells adds several spells to the default Formatter.
func AddSpells(spells ...Spell) error {
	return Default().AddSpells(spells...)
}

// SetPrivateFieldsAccessible sets the private field policy of the default
// Formatter.
func SetPrivateFieldsAccessible(enabled bool) {
	Default().SetPrivateFieldsAccessible(enabled)
}
