package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSpellsCmd(streams *cliIO) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   CmdNameSpells,
		Short: HelpSpellsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newFormatter(configPath)
			if err != nil {
				return err
			}
			for _, name := range f.ListSpells() {
				fmt.Fprintln(streams.stdout, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, FlagConfig, FlagConfigShort, "", HelpFlagConfig)
	return cmd
}
