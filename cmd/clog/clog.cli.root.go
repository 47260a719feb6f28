package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// cliError carries the exit code a failed command should produce. An empty
// message means the command already reported the problem.
type cliError struct {
	code    int
	message string
	cause   error
}

func (e *cliError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *cliError) Unwrap() error {
	return e.cause
}

func newCLIError(code int, message string, cause error) error {
	return &cliError{code: code, message: message, cause: cause}
}

// exitCodeFor reports err on stderr and maps it to an exit code. Errors
// raised by cobra itself (unknown commands, bad flags) are usage errors.
func exitCodeFor(err error, stderr io.Writer) int {
	var ce *cliError
	if errors.As(err, &ce) {
		if ce.message != "" {
			fmt.Fprintln(stderr, ce.Error())
		}
		return ce.code
	}
	fmt.Fprintf(stderr, FmtErrorWithDetail, CLIName, err.Error())
	return ExitCodeUsageError
}

// cliIO holds the streams commands read from and write to
type cliIO struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	streams := &cliIO{stdin: stdin, stdout: stdout, stderr: stderr}
	var noColor bool

	root := &cobra.Command{
		Use:           CLIName,
		Short:         HelpRootShort,
		Long:          HelpRootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVar(&noColor, FlagNoColor, false, HelpFlagNoColor)

	root.AddCommand(
		newFormatCmd(streams),
		newValidateCmd(streams),
		newSpellsCmd(streams),
		newVersionCmd(streams),
	)
	return root
}

// severityColor picks the colour for a severity label
func severityColor(name string) *color.Color {
	switch name {
	case SeverityNameError:
		return color.New(color.FgRed, color.Bold)
	case SeverityNameWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
