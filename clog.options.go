package clog

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Formatter.
type Option func(*formatterConfig)

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	logger         *zap.Logger
	privateFields  bool
	standardSpells bool
	spells         []Spell
	aliases        []spellAlias
}

type spellAlias struct {
	alias  string
	target string
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		privateFields:  DefaultPrivateFields,
		standardSpells: DefaultStandardSpells,
	}
}

// WithLogger sets the logger for the formatter.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}

// WithPrivateFieldAccess lets indexers read unexported struct fields.
// Default: false
func WithPrivateFieldAccess(enabled bool) Option {
	return func(c *formatterConfig) {
		c.privateFields = enabled
	}
}

// WithoutStandardSpells starts the formatter with an empty spellbook.
func WithoutStandardSpells() Option {
	return func(c *formatterConfig) {
		c.standardSpells = false
	}
}

// WithSpells registers spells after the standard spellbook, so they act as
// fallbacks for standard spells of the same name.
func WithSpells(spells ...Spell) Option {
	return func(c *formatterConfig) {
		c.spells = append(c.spells, spells...)
	}
}

// WithSpellAlias registers alias as another name for target. Target must
// be registered by the time the alias is added.
func WithSpellAlias(alias, target string) Option {
	return func(c *formatterConfig) {
		c.aliases = append(c.aliases, spellAlias{alias: alias, target: target})
	}
}
