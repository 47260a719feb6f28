package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itsatony/go-clog"
	"github.com/spf13/cobra"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	source     templateSource
	configPath string
	format     string
	strict     bool
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid  bool                    `json:"valid"`
	Issues []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	Severity    string   `json:"severity"`
	Message     string   `json:"message"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Spell       string   `json:"spell,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func newValidateCmd(streams *cliIO) *cobra.Command {
	cfg := &validateConfig{}

	cmd := &cobra.Command{
		Use:     CmdNameValidate,
		Short:   HelpValidateShort,
		Example: HelpValidateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cfg, streams)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.source.path, FlagTemplate, FlagTemplateShort, "", HelpFlagTemplate)
	flags.StringVarP(&cfg.source.inline, FlagInline, FlagInlineShort, "", HelpFlagInline)
	flags.StringVarP(&cfg.configPath, FlagConfig, FlagConfigShort, "", HelpFlagConfig)
	flags.StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, HelpFlagFormat)
	flags.BoolVar(&cfg.strict, FlagStrictMode, false, HelpFlagStrict)
	return cmd
}

func runValidate(cfg *validateConfig, streams *cliIO) error {
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", cfg.format))
	}

	template, err := cfg.source.read(streams.stdin)
	if err != nil {
		return err
	}

	f, err := newFormatter(cfg.configPath)
	if err != nil {
		return err
	}

	result := f.Validate(template)
	if cfg.format == OutputFormatJSON {
		err = outputValidationJSON(result, cfg.strict, streams)
	} else {
		outputValidationText(result, streams)
	}
	if err != nil {
		return err
	}

	if result.HasErrors() || (cfg.strict && result.HasWarnings()) {
		return newCLIError(ExitCodeValidationError, "", nil)
	}
	return nil
}

// outputValidationText prints the verdict to stdout and the issues, in
// colour, to stderr
func outputValidationText(result *clog.ValidationResult, streams *cliIO) {
	issues := result.Issues()
	if len(issues) == 0 {
		fmt.Fprintln(streams.stdout, ValidationTextSuccess)
		return
	}

	fmt.Fprintln(streams.stderr, ValidationTextIssueHeader)
	for _, issue := range issues {
		name := severityToName(issue.Severity)
		fmt.Fprint(streams.stderr, ValidationTextIssueIndent)
		severityColor(name).Fprintf(streams.stderr, SeverityLabelFormat, name)
		fmt.Fprintf(streams.stderr, DiagnosticTextFormat, issue.Message, issue.Position.Line, issue.Position.Column)
		if issue.SpellName != "" {
			fmt.Fprintf(streams.stderr, ValidationTextSpellFormat, issue.SpellName)
		}
		if len(issue.Suggestions) > 0 {
			fmt.Fprintf(streams.stderr, ValidationTextSuggestions, strings.Join(issue.Suggestions, JoinSuggestions))
		}
		fmt.Fprint(streams.stderr, FmtNewline)
	}
	fmt.Fprintf(streams.stderr, ValidationTextErrorSummary+FmtNewline, len(result.Errors()), len(result.Warnings()))
}

func outputValidationJSON(result *clog.ValidationResult, strict bool, streams *cliIO) error {
	issues := result.Issues()

	output := validationOutput{
		Valid:  result.IsValid() && (!strict || !result.HasWarnings()),
		Issues: make([]validationIssueOutput, 0, len(issues)),
	}

	for _, issue := range issues {
		output.Issues = append(output.Issues, validationIssueOutput{
			Severity:    severityToName(issue.Severity),
			Message:     issue.Message,
			Line:        issue.Position.Line,
			Column:      issue.Position.Column,
			Spell:       issue.SpellName,
			Suggestions: issue.Suggestions,
		})
	}

	jsonBytes, err := json.MarshalIndent(output, "", JSONIndent)
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
	}
	fmt.Fprintln(streams.stdout, string(jsonBytes))
	return nil
}

func severityToName(s clog.ValidationSeverity) string {
	switch s {
	case clog.SeverityError:
		return SeverityNameError
	case clog.SeverityWarning:
		return SeverityNameWarning
	case clog.SeverityInfo:
		return SeverityNameInfo
	default:
		return SeverityNameError
	}
}
