// Package httpserver wraps the go-supervisor HTTP runner for the prepop listener.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
)

// serverImplementation is an interface for abstracting the underlying HTTP server sub-runnable implementation
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer serves a fixed route set on one address. The routes are bound
// at construction; the configuration is never reloaded.
type HTTPServer struct {
	id       string
	listener config.ListenerConfig
	routes   []httpserver.Route
	server   serverImplementation
	logger   *slog.Logger
}

// NewHTTPServer creates a new HTTP server with the specified configuration
func NewHTTPServer(
	id string,
	listener config.ListenerConfig,
	routes []httpserver.Route,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("id", id)
	}

	s := &HTTPServer{
		id:       id,
		listener: listener,
		routes:   slices.Clone(routes),
		logger:   logger,
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(s.buildConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.server = runner

	return s, nil
}

// buildConfig is handed to the runner, which calls it on start.
func (s *HTTPServer) buildConfig() (*httpserver.Config, error) {
	options := []httpserver.ConfigOption{}

	if d := s.listener.ReadTimeout.AsDuration(); d > 0 {
		options = append(options, httpserver.WithReadTimeout(d))
	}
	if d := s.listener.WriteTimeout.AsDuration(); d > 0 {
		options = append(options, httpserver.WithWriteTimeout(d))
	}
	if d := s.listener.IdleTimeout.AsDuration(); d > 0 {
		options = append(options, httpserver.WithIdleTimeout(d))
	}
	if d := s.listener.DrainTimeout.AsDuration(); d > 0 {
		options = append(options, httpserver.WithDrainTimeout(d))
	}

	cfg, err := httpserver.NewConfig(s.listener.Address, slices.Clone(s.routes), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return cfg, nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run starts the HTTP server and blocks until ctx is done or the server fails.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.listener.Address, "routes", len(s.routes))
	return s.server.Run(ctx)
}

func (s *HTTPServer) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.listener.Address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return "unknown"
	}
	return s.server.GetState()
}

func (s *HTTPServer) IsRunning() bool {
	if s.server == nil {
		return false
	}
	return s.server.IsReady()
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}

func (s *HTTPServer) GetID() string {
	return s.id
}

// GetAddress returns the address this server listens on
func (s *HTTPServer) GetAddress() string {
	return s.listener.Address
}
