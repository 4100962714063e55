package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"rcm-go/errcode"
	"rcm-go/internal/dump"
	"rcm-go/targets"
	"rcm-go/x/logx"
)

func newDecodeCmd() *cobra.Command {
	var chipName, hexDump, file string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode an RCM register dump",
		Long: `Decodes a dump of the RCM block starting at SRS0. The dump is given
as hex bytes with --dump, or read from a file with --file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logx.For(logx.ComponentCLI)
			if chipName == "" {
				return &errcode.E{C: errcode.InvalidParams, Op: "decode", Msg: "--chip is required"}
			}
			chip, err := targets.Find(chipName)
			if err != nil {
				log.Debug("chip lookup failed", "chip", chipName)
				return err
			}

			src := hexDump
			switch {
			case file != "" && hexDump != "":
				return &errcode.E{C: errcode.InvalidParams, Op: "decode", Msg: "use either --dump or --file"}
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return errcode.Wrap(errcode.InvalidParams, "decode", err)
				}
				src = string(b)
			case hexDump == "":
				return &errcode.E{C: errcode.InvalidParams, Op: "decode", Msg: "no dump given"}
			}

			raw, err := dump.Parse(src)
			if err != nil {
				return err
			}
			dlog := logx.For(logx.ComponentDecode)
			dlog.Debug("decoding", "chip", chip.Name, "bytes", len(raw))

			d, err := dump.Decode(chip, raw)
			if err != nil {
				return err
			}
			if len(d.Unexpected) > 0 {
				dlog.Warn("status bits not defined for chip", "chip", chip.Name, "bits", d.Unexpected)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "    ")
			return enc.Encode(d)
		},
	}
	cmd.Flags().StringVarP(&chipName, "chip", "c", "", "chip name (see 'rcmctl chips')")
	cmd.Flags().StringVarP(&hexDump, "dump", "d", "", "register bytes in hex, SRS0 first")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the hex dump")
	return cmd
}

// exitCode maps an error to a process exit code for scripting.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *errcode.E
	if errors.As(err, &e) && e.C == errcode.InvalidParams {
		return 2
	}
	return 1
}
