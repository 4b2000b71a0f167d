package config

import (
	"errors"
	"fmt"
)

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = VersionUnknown
	}

	switch c.Version {
	case VersionLatest:
		// Supported version
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, c.Version)
	}

	errz := []error{}

	if err := c.Logging.Validate(); err != nil {
		errz = append(errz, fmt.Errorf("logging: %w", err))
	}

	if c.Listener.Address == "" {
		errz = append(errz, fmt.Errorf("%w: listener address", ErrMissingRequiredField))
	}
	timeouts := []struct {
		name  string
		value Duration
	}{
		{"read_timeout", c.Listener.ReadTimeout},
		{"write_timeout", c.Listener.WriteTimeout},
		{"idle_timeout", c.Listener.IdleTimeout},
		{"drain_timeout", c.Listener.DrainTimeout},
	}
	for _, timeout := range timeouts {
		if timeout.value < 0 {
			errz = append(errz, fmt.Errorf(
				"%w: listener %s is negative: %s",
				ErrInvalidValue,
				timeout.name,
				timeout.value,
			))
		}
	}

	if err := c.Listener.Headers.Validate(); err != nil {
		errz = append(errz, fmt.Errorf("listener headers: %w", err))
	}

	if c.PrePopulate.Flag == "" {
		errz = append(errz, fmt.Errorf("%w: prepopulate flag", ErrMissingRequiredField))
	}

	if err := c.Table().Validate(); err != nil {
		errz = append(errz, err)
	}

	return errors.Join(errz...)
}
