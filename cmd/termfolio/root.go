package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"termfolio/internal/config"
	"termfolio/internal/logger"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootArgs struct {
	configPath string
	overrides  []string
	logFile    string
	logLevel   string
}

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	args      rootArgs
	cfg       config.Config
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "termfolio",
		Short: "Interactive terminal portfolio",
		Long: `termfolio serves a personal portfolio as an emulated shell.

  serve    - host the terminal in the browser over WebSocket
  local    - run the terminal in this TTY
  version  - print the build version
  config   - manage the config file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logCloser != nil {
				_ = a.logCloser.Close()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.args.configPath, "config", config.DefaultPath(), "config file path")
	flags.StringArrayVarP(&a.args.overrides, "config-override", "c", nil, "override config value key=value (repeatable)")
	flags.StringVar(&a.args.logFile, "log-file", "", "log file path, '-' for stderr (default from config)")
	flags.StringVar(&a.args.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newServeCmd(a), newLocalCmd(a), newVersionCmd(), newConfigCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Annotations["skipConfig"] == "true" {
		return nil
	}
	cfg, err := config.Load(a.args.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = config.ApplyKVOverrides(cfg, a.args.overrides)
	if a.args.logFile != "" {
		cfg.Log.Path = a.args.logFile
	}
	if a.args.logLevel != "" {
		cfg.Log.Level = a.args.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if strings.TrimSpace(cfg.Log.Path) == "-" {
		logger.Root().SetOutput(os.Stderr)
		return nil
	}
	closer, path, err := logger.SetupFile(cfg.Log.Path, logger.Rotation{
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		logger.Warnf("failed to initialize log file: %v", err)
		return nil
	}
	a.logCloser = closer
	logger.Named("cli").WithField("path", path).WithField("config", cfg.Source).Debug("logging initialized")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the build version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfig": "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termfolio %s\n", version)
		},
	}
}
