package store

import "log/slog"

type Option func(*Store)

// WithLogHandler sets a custom slog handler for the Store.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Store) {
		if handler != nil {
			s.logger = slog.New(handler).WithGroup("store")
		}
	}
}

// WithLogger sets a logger for the Store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
