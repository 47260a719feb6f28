package clog

import (
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the Formatter options.
//
//	private_fields_accessible: false
//	standard_spells: true
//	log_level: info
//	aliases:
//	  shout: upper
type Config struct {
	PrivateFieldsAccessible bool              `yaml:"private_fields_accessible"`
	StandardSpells          bool              `yaml:"standard_spells"`
	LogLevel                string            `yaml:"log_level"`
	Aliases                 map[string]string `yaml:"aliases,omitempty"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() *Config {
	return &Config{
		PrivateFieldsAccessible: DefaultPrivateFields,
		StandardSpells:          DefaultStandardSpells,
		LogLevel:                DefaultLogLevel,
	}
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigParseFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigFileError(ErrMsgConfigReadFailed, path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level and alias names. Alias targets are checked
// when the Formatter is built.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for alias := range c.Aliases {
		if alias == "" {
			return NewConfigError(ErrMsgConfigEmptyAlias, nil)
		}
	}
	return nil
}

// Level returns the configured zap level. An empty level means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, NewConfigValueError(ErrMsgConfigInvalidLevel, c.LogLevel)
	}
	return level, nil
}

// Options converts the config into Formatter options. Aliases are added in
// name order.
func (c *Config) Options() []Option {
	opts := []Option{WithPrivateFieldAccess(c.PrivateFieldsAccessible)}
	if !c.StandardSpells {
		opts = append(opts, WithoutStandardSpells())
	}

	aliases := make([]string, 0, len(c.Aliases))
	for alias := range c.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		opts = append(opts, WithSpellAlias(alias, c.Aliases[alias]))
	}
	return opts
}

// NewLogger builds a console logger writing to stderr at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	logger, err := zc.Build()
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigParseFailed, err)
	}
	return logger, nil
}
