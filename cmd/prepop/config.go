package main

import (
	"fmt"

	"github.com/atlanticdynamic/prepop/internal/config"
)

// loadConfig reads the TOML file at path, or starts from the built-in
// defaults when path is empty, then applies PREPOP_* environment overrides.
// The result is not validated again; callers apply their flag overrides first.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	if path == "" {
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.NewConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}
