package main

import (
	"github.com/spf13/cobra"

	"termfolio/internal/console"
	"termfolio/internal/logger"
)

func newLocalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "local",
		Short: "Run the terminal in the current TTY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := sessionOptions(a.cfg)
			if err != nil {
				return err
			}
			return console.Run(cmd.Context(), console.Options{
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
				Session:     session,
				CVPath:      a.cfg.CVPath,
				DownloadDir: a.cfg.DownloadDir,
				Log:         logger.Named("console"),
			})
		},
	}
}
