package main

import (
	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/atlanticdynamic/prepop/internal/logging"
)

// SetupLogger configures the default logger from the logging section
func SetupLogger(cfg config.LoggingConfig) {
	logging.SetupLogger(cfg.Format.String(), cfg.Level.String())
}
