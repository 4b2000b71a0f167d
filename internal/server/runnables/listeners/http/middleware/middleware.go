// Package middleware assembles the middleware chain shared by every route of
// the HTTP listener.
package middleware

import (
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/server/runnables/listeners/http/middleware/headers"
	"github.com/atlanticdynamic/prepop/internal/server/runnables/listeners/http/middleware/logger"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Instance is the interface all middleware instances must implement
type Instance interface {
	Middleware() httpserver.HandlerFunc
}

// CreateChain returns the request logger followed by the configured response
// header operations. The logger wraps the headers so it observes the final
// status and size.
func CreateChain(
	listener config.ListenerConfig,
	logHandler slog.Handler,
) ([]httpserver.HandlerFunc, error) {
	instances := []Instance{
		logger.NewConsoleLogger(
			logger.WithLogHandler(logHandler),
			logger.WithSkipPaths("/favicon.ico"),
		),
	}

	if !listener.Headers.IsEmpty() {
		hm, err := headers.NewHeadersMiddleware("response-headers", listener.Headers)
		if err != nil {
			return nil, fmt.Errorf("failed to create headers middleware: %w", err)
		}
		instances = append(instances, hm)
	}

	chain := make([]httpserver.HandlerFunc, 0, len(instances))
	for _, inst := range instances {
		chain = append(chain, inst.Middleware())
	}
	return chain, nil
}
