package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/atlanticdynamic/prepop/internal/interpolation"
)

// interpolate expands ${NAME} and ${NAME:default} references in the listener
// address, header values, and action values. Keys and route tables are
// taken literally.
func (c *Config) interpolate(lookup interpolation.LookupFunc) error {
	var errs []error

	addr, err := interpolation.Expand(c.Listener.Address, lookup)
	if err != nil {
		errs = append(errs, fmt.Errorf("listener address: %w", err))
	}
	c.Listener.Address = addr

	if err := interpolation.ExpandMap(c.Listener.Headers.Set, lookup); err != nil {
		errs = append(errs, fmt.Errorf("listener headers: %w", err))
	}
	if err := interpolation.ExpandMap(c.Listener.Headers.Add, lookup); err != nil {
		errs = append(errs, fmt.Errorf("listener headers: %w", err))
	}

	for _, id := range slices.Sorted(maps.Keys(c.Actions)) {
		action := c.Actions[id]
		value, err := interpolation.Expand(action.Value, lookup)
		if err != nil {
			errs = append(errs, fmt.Errorf("action %s: %w", id, err))
			continue
		}
		action.Value = value
		c.Actions[id] = action
	}

	return errors.Join(errs...)
}
