package prepop

import "log/slog"

// Option configures an App.
type Option func(*App)

// WithLogHandler uses a logger built from handler, grouped under "prepop".
func WithLogHandler(handler slog.Handler) Option {
	return func(a *App) {
		if handler != nil {
			a.logger = slog.New(handler).WithGroup("prepop")
		}
	}
}

// WithLogger sets the logger directly.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}
