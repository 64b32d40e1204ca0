package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
	"github.com/alexisbeaulieu97/cosmicui/internal/site"
	"github.com/alexisbeaulieu97/cosmicui/internal/tui"
	"github.com/alexisbeaulieu97/cosmicui/internal/watch"
)

type browseOptions struct {
	watch   bool
	logFile string
	dryRun  bool
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive site browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the site when the configuration file changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (the terminal is owned by the browser)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Log contact form messages instead of sending them")

	return cmd
}

func runBrowse(cmd *cobra.Command, root *rootFlags, opts *browseOptions) error {
	if opts.watch && root.configPath == "" {
		return newCommandError("watch configuration", "built-in site", os.ErrInvalid,
			"Pass --config with the file to watch")
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	log := logger.Nop()
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return newCommandError("open log file", opts.logFile, err, "Check that the directory exists and is writable")
		}
		defer file.Close()
		if log, err = root.logger(file); err != nil {
			return newCommandError("configure logging", opts.logFile, err, "Check the --verbose and --log-json flags")
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	entries, err := site.LoadTimeline(ctx, cfg)
	if err != nil {
		return newCommandError("load timeline", cfg.Name, err,
			"Check that timeline.git.path points at a readable git repository")
	}

	sender, err := buildSender(cfg.Contact, opts.dryRun, log.Component("contact"))
	if err != nil {
		return newCommandError("configure mail transport", cfg.Contact.SMTP.Host, err,
			"Set contact.recipient and contact.smtp.host, or pass --dry-run")
	}

	model := tui.NewModel(cfg, entries, sender, log)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if opts.watch {
		w, err := watch.New(root.configPath, watch.DefaultDebounce,
			func() error { return reloadInto(ctx, program, root.configPath) },
			func(err error) { program.Send(tui.ConfigErrorMsg{Err: err}) },
		)
		if err != nil {
			return newCommandError("watch configuration", root.configPath, err,
				"Check that the configuration directory exists and is readable")
		}
		w.Start()
		defer w.Stop()
	}

	if _, err := program.Run(); err != nil {
		return newCommandError("run site browser", cfg.Name, err, "Run cosmicui render for a non-interactive view")
	}
	return nil
}

// reloadInto parses path again and hands the result to the running program.
// Errors are returned to the watcher, which reports them as ConfigErrorMsg.
func reloadInto(ctx context.Context, program *tea.Program, path string) error {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return err
	}
	entries, err := site.LoadTimeline(ctx, cfg)
	if err != nil {
		return err
	}
	program.Send(tui.ConfigReloadedMsg{Config: cfg, Timeline: entries})
	return nil
}
