package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/dispatcher"
	"github.com/atlanticdynamic/prepop/internal/fancy"
	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/atlanticdynamic/prepop/internal/store"
	"github.com/urfave/cli/v3"
)

var resolveCmd = &cli.Command{
	Name:      "resolve",
	Usage:     "Run a URL through the dispatcher against a fresh store and print the result",
	ArgsUsage: "<url>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to TOML configuration file (built-in table when omitted)",
		},
	},
	Action: resolveAction,
}

func resolveAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return cli.Exit("URL required, for example: prepop resolve '/surname?pre-populate'", 1)
	}

	u, err := url.Parse(cmd.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Errorf("invalid URL: %w", err), 1)
	}

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Errorf("%w: %w", config.ErrFailedToValidateConfig, err), 1)
	}

	res, err := resolver.New(cfg.Table())
	if err != nil {
		return cli.Exit(err, 1)
	}

	quiet := slog.DiscardHandler
	st := store.New(store.WithLogHandler(quiet))
	disp, err := dispatcher.New(res, st,
		dispatcher.WithFlag(cfg.PrePopulate.Flag),
		dispatcher.WithLogHandler(quiet),
	)
	if err != nil {
		return cli.Exit(err, 1)
	}

	result, err := disp.Observe(u)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(cmd.Root().Writer, renderResolution(u, disp.Flag(), result, st.Snapshot()))
	return nil
}

// renderResolution draws what one observed URL did to a fresh store.
func renderResolution(u *url.URL, flag string, result dispatcher.Result, snap store.Snapshot) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Resolve %s", u)))

	routeKey := result.RouteKey
	if routeKey == "" {
		routeKey = "(none)"
	}
	t.Child(fmt.Sprintf("Route: %s", fancy.RouteText(routeKey)))

	if !result.Requested {
		t.Child(fmt.Sprintf("Flag ?%s not present, store untouched", flag))
	} else {
		updates := fancy.BranchNode("Batch", fmt.Sprintf("(%d updates)", len(result.Updates)))
		for i, rec := range result.Updates {
			updates.Child(fmt.Sprintf("%d: %s = %q", i+1, fancy.FieldText(rec.Field.String()), rec.Value))
		}
		t.Child(updates)
	}

	state := fancy.Section("Snapshot")
	for _, f := range store.Fields {
		state.Child(fmt.Sprintf("%s: %q", fancy.FieldText(f.String()), snap.Get(f)))
	}
	t.Child(state)

	return t.String()
}
