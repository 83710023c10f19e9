package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/georef/wkt/wkt"
)

func newFmtCmd() *cobra.Command {
	var (
		convention  string
		indent      int
		singleLine  bool
		keywordCase string
		color       string
		authority   string
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat WKT read from a file or stdin",
		Long: `Parse a WKT definition and print it back under the requested
convention. The input dialect is detected from its keywords, so fmt also
converts between WKT 1 and WKT 2.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args)
			if err != nil {
				return err
			}

			conv, err := wkt.ParseConvention(convention)
			if err != nil {
				return err
			}

			f := wkt.NewFormat()
			f.SetConvention(conv)
			f.SetAuthority(authority)
			if singleLine {
				f.SetIndentation(wkt.SingleLine)
			} else {
				f.SetIndentation(indent)
			}

			switch keywordCase {
			case "default":
			case "upper":
				f.SetKeywordCase(wkt.UpperCase)
			case "camel":
				f.SetKeywordCase(wkt.CamelCase)
			default:
				return fmt.Errorf("unknown keyword case: %s (expected default, upper, or camel)", keywordCase)
			}

			switch color {
			case "auto":
				if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
					f.SetColors(wkt.DefaultColors())
				}
			case "always":
				f.SetColors(wkt.DefaultColors())
			case "never":
			default:
				return fmt.Errorf("unknown color mode: %s (expected auto, always, or never)", color)
			}

			obj, err := f.Parse(string(source))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if w := f.Warnings(); w != nil {
				fmt.Fprintln(os.Stderr, w)
			}

			if err := f.Format(obj, os.Stdout); err != nil {
				return fmt.Errorf("format: %w", err)
			}
			fmt.Println()
			if w := f.Warnings(); w != nil {
				fmt.Fprintln(os.Stderr, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&convention, "convention", "c", "WKT2", "output convention (WKT2, WKT1, ESRI, GeoTIFF, Internal)")
	cmd.Flags().IntVarP(&indent, "indent", "i", 2, "spaces per nesting level")
	cmd.Flags().BoolVarP(&singleLine, "single-line", "s", false, "write the whole text on one line")
	cmd.Flags().StringVar(&keywordCase, "keyword-case", "default", "keyword case (default, upper, camel)")
	cmd.Flags().StringVar(&color, "color", "auto", "colorize output (auto, always, never)")
	cmd.Flags().StringVar(&authority, "authority", "", "prefer element names of this authority")

	return cmd
}
