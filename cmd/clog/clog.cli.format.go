package main

import (
	"fmt"

	"github.com/itsatony/go-clog"
	"github.com/spf13/cobra"
)

// formatConfig holds parsed format command configuration
type formatConfig struct {
	source      templateSource
	params      []string
	paramsFile  string
	configPath  string
	outputPath  string
	diagnostics bool
}

func newFormatCmd(streams *cliIO) *cobra.Command {
	cfg := &formatConfig{}

	cmd := &cobra.Command{
		Use:     CmdNameFormat,
		Short:   HelpFormatShort,
		Example: HelpFormatExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cfg, streams)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.source.path, FlagTemplate, FlagTemplateShort, "", HelpFlagTemplate)
	flags.StringVarP(&cfg.source.inline, FlagInline, FlagInlineShort, "", HelpFlagInline)
	flags.StringArrayVarP(&cfg.params, FlagParam, FlagParamShort, nil, HelpFlagParam)
	flags.StringVarP(&cfg.paramsFile, FlagParamsFile, FlagParamsFileShort, "", HelpFlagParams)
	flags.StringVarP(&cfg.configPath, FlagConfig, FlagConfigShort, "", HelpFlagConfig)
	flags.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, HelpFlagOutput)
	flags.BoolVarP(&cfg.diagnostics, FlagDiagnostics, FlagDiagnosticsShort, false, HelpFlagDiag)
	return cmd
}

func runFormat(cfg *formatConfig, streams *cliIO) error {
	template, err := cfg.source.read(streams.stdin)
	if err != nil {
		return err
	}

	params, err := loadParams(cfg.paramsFile, cfg.params)
	if err != nil {
		return err
	}

	f, err := newFormatter(cfg.configPath)
	if err != nil {
		return err
	}

	eval := f.Evaluate(template, params...)
	if cfg.diagnostics {
		printDiagnostics(eval.Diagnostics, streams)
	}

	if err := writeOutput(cfg.outputPath, []byte(eval.Output), streams.stdout); err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// printDiagnostics writes one coloured line per diagnostic to stderr
func printDiagnostics(diags clog.Diagnostics, streams *cliIO) {
	label := severityColor(SeverityNameWarning)
	for _, d := range diags {
		label.Fprintf(streams.stderr, SeverityLabelFormat, SeverityNameWarning)
		fmt.Fprintf(streams.stderr, DiagnosticTextFormat+FmtNewline, d.Message, d.Position.Line, d.Position.Column)
	}
}
