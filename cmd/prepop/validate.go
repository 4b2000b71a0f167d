package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/fancy"
	"github.com/urfave/cli/v3"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate a configuration file",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the validated configuration",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the configuration file",
		},
	},
	Suggest: true,
	Action:  validateAction,
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return cli.Exit(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
				1,
			)
		}
		configPath = cmd.Args().Get(0)
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return cli.Exit(fmt.Errorf("%s %s: %w", fancy.ErrorText("invalid"), configPath, err), 1)
	}

	w := cmd.Root().Writer
	fmt.Fprintf(w, "%s Configuration file %s is valid\n", fancy.ValidText("✓"), fancy.PathText(configPath))
	if cmd.Bool("tree") {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cfg)
		return nil
	}
	fmt.Fprintln(w, renderConfigSummary(configPath, cfg))
	return nil
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Version: %s\n", cfg.Version)
	fmt.Fprintf(&summary, "- Listener: %s\n", cfg.Listener.Address)
	fmt.Fprintf(&summary, "- Flag: ?%s\n", cfg.PrePopulate.Flag)
	fmt.Fprintf(&summary, "- Actions: %d\n", len(cfg.Actions))
	fmt.Fprintf(&summary, "- Routes: %d\n", len(cfg.Routes))
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
