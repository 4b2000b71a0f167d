package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides configuration values from PREPOP_* environment
// variables. Unset variables leave the current values untouched.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyEnvFrom is ApplyEnv with an explicit environment, for tests.
func (c *Config) applyEnvFrom(environment map[string]string) error {
	if err := env.ParseWithOptions(c, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
