package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cosmicui/internal/site"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
)

type renderOptions struct {
	width int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the whole site once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Render width in columns (defaults to the terminal width)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	body, _, err := site.Render(cmd.Context(), cfg, width)
	if err != nil {
		return newCommandError("render site", cfg.Name, err,
			"Check that timeline.git.path points at a readable git repository")
	}

	ctx := components.DefaultContext().WithTheme(site.ThemeFor(cfg)).WithWidth(width)
	nav := components.Render(site.NavBar(cfg, cfg.Nav[0].ID), ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, nav)
	fmt.Fprintln(out)
	fmt.Fprintln(out, body)
	return nil
}
