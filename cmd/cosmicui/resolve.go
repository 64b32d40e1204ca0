package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

type resolveOptions struct {
	highlight bool
	glow      bool
	alpha     float64
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve T",
		Short: "Print the headline gradient color at position T",
		Long: "Resolve the configured headline gradient at position T in [0,1].\n" +
			"Values outside the range are clamped.",
		Example: "  cosmicui resolve 0.5\n" +
			"  cosmicui resolve -0.5 --glow\n" +
			"  cosmicui resolve 1 --alpha 0.4",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "Print the highlight variant of the color")
	cmd.Flags().BoolVar(&opts.glow, "glow", false, "Print the glow variant of the color")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 1, "Print rgba() with this alpha, clamped to [0,1]")
	cmd.MarkFlagsMutuallyExclusive("highlight", "glow")

	return cmd
}

func runResolve(cmd *cobra.Command, arg string, root *rootFlags, opts *resolveOptions) error {
	t, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return newCommandError("parse gradient position", arg, err,
			"Pass a number between 0 and 1, for example 0.5")
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	c := cfg.HeadlineStops().Resolve(t)
	switch {
	case opts.highlight:
		c = gradient.Highlight(c)
	case opts.glow:
		c = gradient.Glow(c)
	}

	out := c.CSS()
	if cmd.Flags().Changed("alpha") {
		out = c.CSSAlpha(opts.alpha)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
