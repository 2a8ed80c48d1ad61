package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"termfolio/internal/logger"
	"termfolio/internal/webhost"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the terminal over HTTP and WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if listen != "" {
				cfg.Listen = listen
			}
			session, err := sessionOptions(cfg)
			if err != nil {
				return err
			}
			srv, err := webhost.New(webhost.Config{
				Listen:         cfg.Listen,
				AllowedOrigins: cfg.AllowedOrigins,
				CVPath:         cfg.CVPath,
				Session:        session,
				Log:            logger.Named("webhost"),
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.Printf("termfolio listening on http://%s\n", cfg.Listen)
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}
