package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timemann",
		Short: "Stopwatch and countdown timer for the terminal",
		Long: `timemann is a full-screen stopwatch and countdown timer.

Keys: tab switches tools, enter starts or pauses, c clears,
e edits a countdown, 0-9 enter the countdown time, q quits.

Settings are read from $XDG_CONFIG_HOME/timemann/config.yaml
(override with TIMEMANN_CONFIG). Set TIMEMANN_LOG to a file path
to write a debug log.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}
