package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wecom-relay/config"
	"wecom-relay/internal/httpserver"
	"wecom-relay/internal/ratelimit"
	"wecom-relay/internal/relay"
	"wecom-relay/internal/relay/delivery/cli"
	relayHTTP "wecom-relay/internal/relay/delivery/http"
	"wecom-relay/internal/relay/usecase"
	"wecom-relay/pkg/log"
	"wecom-relay/pkg/wecom"
)

type options struct {
	api        bool
	cli        bool
	configPath string
	// configExplicit is set when --config was passed on the command line.
	configExplicit bool
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.BoolVar(&o.api, "api", false, "run the HTTP API server")
	fs.BoolVar(&o.cli, "cli", false, "run the interactive prompt")
	fs.StringVarP(&o.configPath, "config", "c", config.DefaultPath, "path to a JSON config file")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "relay",
		Short:         "Relay chat messages to a WeCom group-bot webhook",
		Long:          "Relay chat messages to a WeCom group-bot webhook.\nUse --api to serve POST /send or --cli for an interactive prompt.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !o.api && !o.cli {
				return cmd.Help()
			}
			o.configExplicit = cmd.Flags().Changed("config")

			err := run(cmd.Context(), *o, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}
	addFlags(cmd.Flags(), o)
	return cmd
}

func run(parent context.Context, o options, in io.Reader, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}

	// 1. Configuration
	cfg, err := config.Load(o.configPath, o.configExplicit)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Rate limit: %d messages per %s", cfg.RateLimit.PerMinute, ratelimit.Window)

	// 3. Relay domain
	limiter := ratelimit.New(cfg.RateLimit.PerMinute)
	client := wecom.NewClient(cfg.Webhook.URL, cfg.Webhook.Timeout)
	uc := usecase.New(logger, limiter, client)

	// 4. Delivery
	var srv *httpserver.HTTPServer
	if o.api {
		srv, err = httpserver.New(logger, httpserver.Config{
			Logger:       logger,
			Port:         cfg.HTTPServer.Port,
			Mode:         cfg.HTTPServer.Mode,
			Environment:  cfg.Environment.Name,
			Secret:       cfg.API.Secret,
			RelayHandler: relayHTTP.New(logger, uc),
			RateStatus:   limiter,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize HTTP server: %w", err)
		}
	}

	switch {
	case o.api && o.cli:
		return runBoth(ctx, logger, srv, uc, in, out)
	case o.api:
		return srv.Run(ctx)
	default:
		return cli.New(logger, uc, in, out).Run(ctx)
	}
}

// runBoth serves the API in the background while the prompt owns the
// terminal. Leaving the prompt stops the server; a server failure ends the
// prompt.
func runBoth(ctx context.Context, l log.Logger, srv *httpserver.HTTPServer, uc relay.UseCase, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	apiErr := make(chan error, 1)
	go func() {
		err := srv.Run(ctx)
		if err != nil {
			l.Errorf(ctx, "HTTP server stopped: %v", err)
			cancel()
		}
		apiErr <- err
	}()

	cliErr := cli.New(l, uc, in, out).Run(ctx)
	cancel()
	return errors.Join(cliErr, <-apiErr)
}
