// Package interpolation expands ${NAME} and ${NAME:default} references in
// configuration strings.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVar is returned for a reference with no value and no default.
var ErrUndefinedVar = errors.New("environment variable not defined")

// LookupFunc resolves a variable name, reporting whether it is set.
type LookupFunc func(name string) (string, bool)

// the optional colon is captured on its own so ${VAR:} means "default to empty"
var refPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars expands references against the process environment.
func ExpandEnvVars(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}

// Expand replaces each ${NAME} or ${NAME:default} in input. A set variable
// wins over the default, even when it is empty. Undefined references without
// a default are left in place and reported together.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	result := refPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := refPattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVar, name))
		return match
	})

	return result, errors.Join(missing...)
}

// ExpandMap expands every value of m in place.
func ExpandMap(m map[string]string, lookup LookupFunc) error {
	var errs []error
	for key, value := range m {
		expanded, err := Expand(value, lookup)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		m[key] = expanded
	}
	return errors.Join(errs...)
}

// MapLookup adapts a fixed map to a LookupFunc.
func MapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}
