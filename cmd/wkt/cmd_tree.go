package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georef/wkt/wkt"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the element tree of a WKT definition",
		Long: `Tokenize a WKT definition and print its raw element tree, one
node per line, without interpreting the keywords. Useful for inspecting
text that the higher level parser rejects.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args)
			if err != nil {
				return err
			}
			root, err := wkt.ParseTree(string(source), nil)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			fmt.Print(root)
			return nil
		},
	}
	return cmd
}
