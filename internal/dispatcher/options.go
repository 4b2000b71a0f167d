package dispatcher

import "log/slog"

type Option func(*Dispatcher)

// WithFlag overrides the query key that requests pre-population.
func WithFlag(flag string) Option {
	return func(d *Dispatcher) {
		if flag != "" {
			d.flag = flag
		}
	}
}

// WithLogHandler sets a custom slog handler for the Dispatcher.
func WithLogHandler(handler slog.Handler) Option {
	return func(d *Dispatcher) {
		if handler != nil {
			d.logger = slog.New(handler).WithGroup("dispatcher")
		}
	}
}

// WithLogger sets a logger for the Dispatcher.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}
