package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.buildTime=..."
var (
	version   = ""
	commit    = ""
	buildTime = ""
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd(streams *cliIO) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: HelpVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatText && format != OutputFormatJSON {
				return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, fmt.Errorf("%q", format))
			}

			v := getVersionInfo()
			if format == OutputFormatJSON {
				jsonBytes, err := json.MarshalIndent(v, "", JSONIndent)
				if err != nil {
					return newCLIError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
				}
				fmt.Fprintln(streams.stdout, string(jsonBytes))
				return nil
			}
			fmt.Fprintf(streams.stdout, VersionTextTemplate+FmtNewline, v.Version, v.Commit, v.BuildTime, v.GoVersion)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, HelpFlagFormat)
	return cmd
}

// getVersionInfo prefers link-time values and falls back to the module
// build info
func getVersionInfo() *versionOutput {
	v := &versionOutput{
		Version:   orUnknown(version),
		Commit:    orUnknown(commit),
		BuildTime: orUnknown(buildTime),
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	if version == "" && info.Main.Version != "" {
		v.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case BuildSettingRevision:
			if commit == "" {
				v.Commit = s.Value
			}
		case BuildSettingTime:
			if buildTime == "" {
				v.BuildTime = s.Value
			}
		}
	}
	return v
}

func orUnknown(s string) string {
	if s == "" {
		return VersionUnknown
	}
	return s
}
