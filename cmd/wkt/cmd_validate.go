package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/georef/wkt/wkt"
)

func newValidateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a WKT definition parses",
		Long: `Parse a WKT definition and report problems. Hard errors make the
command fail; unknown elements and other recoverable problems are listed
as warnings but the definition is still accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args)
			if err != nil {
				return err
			}
			f := wkt.NewFormat()
			if _, err := f.Parse(string(source)); err != nil {
				return err
			}
			if w := f.Warnings(); w != nil && !quiet {
				fmt.Fprintln(os.Stderr, w)
			}
			if !quiet {
				fmt.Println("OK")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress warnings and the OK line")

	return cmd
}
