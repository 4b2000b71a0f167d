package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/prepop/cmd/prepop/server"
	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/urfave/cli/v3"
)

var serverCmd = &cli.Command{
	Name:  "server",
	Usage: "Start the prepop HTTP server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file (built-in table when omitted)",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "HTTP listen address, overrides the config file and PREPOP_LISTEN_ADDR",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (trace, debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (text, json)",
		},
	},
	Action: serverAction,
}

func serverAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
	}

	if err := applyServerFlags(cfg, cmd); err != nil {
		return cli.Exit(err, 1)
	}

	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Errorf("%w: %w", config.ErrFailedToValidateConfig, err), 1)
	}

	SetupLogger(cfg.Logging)
	logger := slog.Default()

	if err := server.Run(ctx, logger, cfg); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// applyServerFlags copies explicitly set flags over the loaded config.
func applyServerFlags(cfg *config.Config, cmd *cli.Command) error {
	if cmd.IsSet("listen") {
		cfg.Listener.Address = cmd.String("listen")
	}
	if cmd.IsSet("log-level") {
		level, err := config.LogLevelFromString(cmd.String("log-level"))
		if err != nil {
			return err
		}
		cfg.Logging.Level = level
	}
	if cmd.IsSet("log-format") {
		cfg.Logging.Format = config.LogFormat(cmd.String("log-format"))
	}
	return nil
}
