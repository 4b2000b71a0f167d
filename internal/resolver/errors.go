package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigIntegrity means the route table references an action the
	// action table does not define.
	ErrConfigIntegrity = errors.New("config integrity violation")
	ErrEmptySequence   = errors.New("empty action sequence")
	ErrEmptyRouteKey   = errors.New("empty route key")
	ErrEmptyActionID   = errors.New("empty action ID")
	ErrUnknownField    = errors.New("action targets unknown field")
)

// ConfigIntegrityError reports a route whose sequence names a missing action.
type ConfigIntegrityError struct {
	RouteKey string
	ActionID ActionID
	Position int
}

func (e *ConfigIntegrityError) Error() string {
	return fmt.Sprintf(
		"%s: route %q step %d references undefined action %q",
		ErrConfigIntegrity, e.RouteKey, e.Position+1, e.ActionID,
	)
}

func (e *ConfigIntegrityError) Unwrap() error {
	return ErrConfigIntegrity
}
