// Package logger provides the request logging middleware for the HTTP listener.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// Option configures a ConsoleLogger.
type Option func(*ConsoleLogger)

// WithLogHandler routes request logs to the given handler, grouped under "http".
func WithLogHandler(handler slog.Handler) Option {
	return func(cl *ConsoleLogger) {
		if handler != nil {
			cl.logger = slog.New(handler).WithGroup("http")
		}
	}
}

// WithSkipPaths excludes requests whose path starts with any of the prefixes.
func WithSkipPaths(prefixes ...string) Option {
	return func(cl *ConsoleLogger) {
		cl.skipPaths = append(cl.skipPaths, prefixes...)
	}
}

// WithSkipMethods excludes requests with any of the methods.
func WithSkipMethods(methods ...string) Option {
	return func(cl *ConsoleLogger) {
		cl.skipMethods = append(cl.skipMethods, methods...)
	}
}

// ConsoleLogger logs one line per HTTP request after the handler chain has run.
type ConsoleLogger struct {
	filter      *logFilter
	logger      lgr
	skipPaths   []string
	skipMethods []string
}

func NewConsoleLogger(opts ...Option) *ConsoleLogger {
	cl := &ConsoleLogger{
		logger: slog.Default().WithGroup("http"),
	}
	for _, opt := range opts {
		opt(cl)
	}
	cl.filter = newLogFilter(cl.skipPaths, cl.skipMethods)
	return cl
}

// Middleware returns the middleware function
func (cl *ConsoleLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()

		if cl.filter.ShouldSkip(r) {
			rp.Next()
			return
		}

		start := time.Now()

		// process the other middleware, and the endpoint handler
		rp.Next()

		attrs := cl.filter.BuildLogAttrs(r, rp.Writer(), time.Since(start))
		cl.Log(r.Context(), attrs)
	}
}

// Log writes the log entry with appropriate level based on status code
func (cl *ConsoleLogger) Log(ctx context.Context, attrs []slog.Attr) {
	if len(attrs) == 0 {
		return
	}

	cl.logger.LogAttrs(ctx, levelForAttrs(attrs), "HTTP request", attrs...)
}

func levelForAttrs(attrs []slog.Attr) slog.Level {
	for _, attr := range attrs {
		if attr.Key != attrStatus {
			continue
		}
		status := int(attr.Value.Int64())
		switch {
		case status >= http.StatusInternalServerError:
			return slog.LevelError
		case status >= http.StatusBadRequest:
			return slog.LevelWarn
		}
		break
	}
	return slog.LevelInfo
}
