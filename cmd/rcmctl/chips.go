package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rcm-go/targets"
)

func newChipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chips",
		Short: "List supported chips and their RCM features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHIP\tSERIES\tBASE\tFEATURES")
			for _, c := range targets.All() {
				fmt.Fprintf(w, "%s\t%s\t%#08x\t%s\n", c.Name, c.Series, c.Base, strings.Join(c.Features, ","))
			}
			return w.Flush()
		},
	}
}
