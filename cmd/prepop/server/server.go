// Package server wires the prepop components together and runs them under a
// go-supervisor process supervisor.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/dispatcher"
	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/atlanticdynamic/prepop/internal/server/apps/prepop"
	"github.com/atlanticdynamic/prepop/internal/server/runnables/listeners/http/httpserver"
	"github.com/atlanticdynamic/prepop/internal/server/runnables/listeners/http/middleware"
	"github.com/atlanticdynamic/prepop/internal/store"
	"github.com/robbyt/go-supervisor/supervisor"
)

// AppID names the single app served by the listener.
const AppID = "prepop"

// Run starts the prepop server with a validated configuration and blocks
// until ctx is cancelled or the supervisor stops.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", config.ErrFailedToValidateConfig)
	}
	logHandler := logger.Handler()

	// the resolver takes its own copy of the table and refuses a table with
	// dangling action references
	res, err := resolver.New(cfg.Table())
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	st := store.New(store.WithLogHandler(logHandler))

	disp, err := dispatcher.New(res, st,
		dispatcher.WithFlag(cfg.PrePopulate.Flag),
		dispatcher.WithLogHandler(logHandler),
	)
	if err != nil {
		return fmt.Errorf("failed to create dispatcher: %w", err)
	}

	app, err := prepop.New(AppID, st, res, disp, prepop.WithLogHandler(logHandler))
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	defer app.Close()

	chain, err := middleware.CreateChain(cfg.Listener, logHandler)
	if err != nil {
		return fmt.Errorf("failed to create middleware chain: %w", err)
	}

	routes, err := app.Routes(chain...)
	if err != nil {
		return fmt.Errorf("failed to create routes: %w", err)
	}

	httpServer, err := httpserver.NewHTTPServer(
		"main",
		cfg.Listener,
		routes,
		slog.New(logHandler).WithGroup("httpserver"),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(httpServer),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}

	logger.Info("Starting prepop",
		"address", cfg.Listener.Address,
		"flag", cfg.PrePopulate.Flag,
		"routes", len(res.RouteKeys()))

	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
