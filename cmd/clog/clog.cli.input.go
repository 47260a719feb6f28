package main

import (
	"errors"
	"io"
	"os"

	"github.com/itsatony/go-clog"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// templateSource is the shared --template / --inline pair
type templateSource struct {
	path   string
	inline string
}

// read returns the template text from the inline flag, a file or stdin
func (s *templateSource) read(stdin io.Reader) (string, error) {
	switch {
	case s.path != "" && s.inline != "":
		return "", newCLIError(ExitCodeUsageError, ErrMsgBothTemplates, nil)
	case s.inline != "":
		return s.inline, nil
	case s.path == "":
		return "", newCLIError(ExitCodeUsageError, ErrMsgMissingTemplate, nil)
	}

	data, err := readInput(s.path, stdin)
	if err != nil {
		return "", newCLIError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	return string(data), nil
}

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput || path == "" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadParams builds the positional parameters: the params file sequence
// first, then each --param in order
func loadParams(filePath string, raw []string) ([]any, error) {
	var params []any

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, newCLIError(ExitCodeInputError, ErrMsgParamsFileFailed, err)
		}
		var fromFile []any
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, newCLIError(ExitCodeInputError, ErrMsgParamsFileFailed,
				errors.Join(errors.New(ErrMsgParamsNotSequence), err))
		}
		params = append(params, fromFile...)
	}

	for _, r := range raw {
		params = append(params, parseParam(r))
	}
	return params, nil
}

// parseParam decodes a YAML scalar so that 42 is an int and true a bool.
// Anything that is not a plain scalar is kept as the raw string.
func parseParam(raw string) any {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil || len(node.Content) != 1 {
		return raw
	}
	scalar := node.Content[0]
	if scalar.Kind != yaml.ScalarNode {
		return raw
	}
	var v any
	if err := scalar.Decode(&v); err != nil {
		return raw
	}
	return v
}

// newFormatter builds a Formatter from an optional config file. A config
// file also turns on zap logging at its log level.
func newFormatter(configPath string) (*clog.Formatter, error) {
	if configPath == "" {
		f, err := clog.New()
		if err != nil {
			return nil, newCLIError(ExitCodeError, ErrMsgFormatterFailed, err)
		}
		return f, nil
	}

	cfg, err := clog.LoadConfig(configPath)
	if err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgConfigFailed, err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, newCLIError(ExitCodeError, ErrMsgLoggerFailed, err)
	}

	opts := append(cfg.Options(), clog.WithLogger(logger.Named(CLIName)))
	f, err := clog.New(opts...)
	if err != nil {
		return nil, newCLIError(ExitCodeError, ErrMsgFormatterFailed, err)
	}
	logger.Debug(clog.LogMsgConfigLoaded, zap.String(clog.LogFieldPath, configPath))
	return f, nil
}
