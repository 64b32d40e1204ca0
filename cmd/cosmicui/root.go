package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
	"github.com/alexisbeaulieu97/cosmicui/internal/site"
)

type rootFlags struct {
	verbose    bool
	logJSON    bool
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cosmicui",
		Short:         "CosmicUI renders a gradient-styled portfolio site in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Site configuration file (defaults to the built-in CosmicUI site)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colors and text styling")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newGradientCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger writing to w.
func (f *rootFlags) logger(w io.Writer) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: !f.logJSON, Writer: w})
}

func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, newCommandError("load site configuration", f.configPath, err,
			"Check the YAML syntax and field values, or omit --config to use the built-in site")
	}
	return cfg, nil
}

// terminalWidth returns the width of w when it is a terminal, otherwise site.DefaultWidth.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return site.DefaultWidth
}
