package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cosmicui/internal/site"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

type gradientOptions struct {
	json bool
	css  bool
}

// letterColor is one row of the --json output.
type letterColor struct {
	Char string   `json:"char"`
	T    float64  `json:"t"`
	RGB  [3]uint8 `json:"rgb"`
	Hex  string   `json:"hex"`
}

func newGradientCmd(root *rootFlags) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient [TEXT]",
		Short: "Color text along the headline gradient",
		Long: "Color each character of TEXT along the configured headline gradient.\n" +
			"Without TEXT the configured headline is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, args, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print per-character colors as JSON")
	cmd.Flags().BoolVar(&opts.css, "css", false, "Print one CSS rgb() color per character")
	cmd.MarkFlagsMutuallyExclusive("json", "css")

	return cmd
}

func runGradient(cmd *cobra.Command, args []string, root *rootFlags, opts *gradientOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	text := cfg.Headline.Text
	if len(args) == 1 {
		text = args[0]
	}
	stops := cfg.HeadlineStops()
	runes := []rune(text)
	colors := gradient.Colorize(stops, text)
	out := cmd.OutOrStdout()

	switch {
	case opts.json:
		rows := make([]letterColor, len(runes))
		for i, r := range runes {
			c := colors[i]
			rows[i] = letterColor{
				Char: string(r),
				T:    gradient.Position(i, len(runes)),
				RGB:  [3]uint8{c.R, c.G, c.B},
				Hex:  c.Hex(),
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)

	case opts.css:
		var b strings.Builder
		for i, r := range runes {
			fmt.Fprintf(&b, "%c %s\n", r, colors[i].CSS())
		}
		_, err := fmt.Fprint(out, b.String())
		return err

	default:
		ctx := components.DefaultContext().WithTheme(site.ThemeFor(cfg))
		view := components.NewGradientText(text).WithStops(stops).Bold().ViewWithContext(ctx)
		_, err := fmt.Fprintln(out, view)
		return err
	}
}
