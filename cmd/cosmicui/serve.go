package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
)

type serveOptions struct {
	addr   string
	dryRun bool
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the contact form HTTP endpoint",
		Long: "Serve POST " + contact.Route + " and forward valid messages to the configured\n" +
			"SMTP relay. Without a relay, or with --dry-run, messages are logged instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (defaults to server.addr from the configuration)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Log messages instead of sending them")

	return cmd
}

func runServe(cmd *cobra.Command, root *rootFlags, opts *serveOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	log, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("configure logging", "stderr", err, "Check the --verbose and --log-json flags")
	}

	sender, err := buildSender(cfg.Contact, opts.dryRun, log.Component("contact"))
	if err != nil {
		return newCommandError("configure mail transport", cfg.Contact.SMTP.Host, err,
			"Set contact.recipient and contact.smtp.host, or pass --dry-run")
	}

	addr := opts.addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := contact.NewServer(addr, contact.NewHandler(sender, log.Component("http")), log)
	if err := server.ListenAndServe(ctx); err != nil {
		return newCommandError("serve contact endpoint", addr, err,
			"Check that the address is free or pick another with --addr")
	}
	return nil
}
