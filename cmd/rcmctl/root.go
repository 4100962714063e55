package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"rcm-go/x/logx"
)

func newRootCmd() *cobra.Command {
	var verbose, jsonLogs bool

	root := &cobra.Command{
		Use:   "rcmctl",
		Short: "Kinetis Reset Control Module inspector",
		Long: `Decodes RCM register dumps (SRS0 through SSRS1) taken from a
Kinetis part and lists the RCM capabilities of supported chips.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			f := logx.FormatText
			if jsonLogs {
				f = logx.FormatJSON
			}
			logx.SetOutput(cmd.ErrOrStderr(), f)
			if verbose {
				logx.SetLevel(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "log in JSON format")

	root.AddCommand(newChipsCmd(), newDecodeCmd())
	return root
}
