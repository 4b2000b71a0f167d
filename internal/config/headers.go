package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// HeadersConfig lists the response header operations applied to every page.
type HeadersConfig struct {
	// Headers to set (replace existing values)
	Set map[string]string `toml:"set"`

	// Headers to add (append to existing values)
	Add map[string]string `toml:"add"`

	// Header names to remove
	Remove []string `toml:"remove"`
}

// DefaultHeaders keeps pages out of caches, since they render live state.
func DefaultHeaders() HeadersConfig {
	return HeadersConfig{
		Set: map[string]string{
			"Cache-Control":          "no-store",
			"X-Content-Type-Options": "nosniff",
		},
	}
}

// IsEmpty reports whether no header operation is configured.
func (h HeadersConfig) IsEmpty() bool {
	return len(h.Set) == 0 && len(h.Add) == 0 && len(h.Remove) == 0
}

// Validate checks header names and values against the HTTP grammar.
func (h HeadersConfig) Validate() error {
	var errs []error

	for _, key := range slices.Sorted(maps.Keys(h.Set)) {
		if err := validateHeader(key, h.Set[key]); err != nil {
			errs = append(errs, fmt.Errorf("invalid set header '%s': %w", key, err))
		}
	}

	for _, key := range slices.Sorted(maps.Keys(h.Add)) {
		if err := validateHeader(key, h.Add[key]); err != nil {
			errs = append(errs, fmt.Errorf("invalid add header '%s': %w", key, err))
		}
	}

	for _, key := range h.Remove {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Errorf("%w: remove header name cannot be empty", ErrInvalidValue))
		}
	}

	return errors.Join(errs...)
}

func (h HeadersConfig) String() string {
	var parts []string
	if len(h.Set) > 0 {
		parts = append(parts, fmt.Sprintf("set %d", len(h.Set)))
	}
	if len(h.Add) > 0 {
		parts = append(parts, fmt.Sprintf("add %d", len(h.Add)))
	}
	if len(h.Remove) > 0 {
		parts = append(parts, fmt.Sprintf("remove %d", len(h.Remove)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func validateHeader(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: header name cannot be empty", ErrInvalidValue)
	}
	if !httpguts.ValidHeaderFieldName(key) {
		return fmt.Errorf("%w: header name %q", ErrInvalidValue, key)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: header value for %s", ErrInvalidValue, key)
	}
	return nil
}
