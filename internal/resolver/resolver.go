// Package resolver turns a route key into the ordered update records that
// pre-populate the store for that route.
package resolver

import (
	"fmt"
	"maps"
	"slices"

	"github.com/atlanticdynamic/prepop/internal/store"
)

// Resolver looks route keys up in an immutable Table.
type Resolver struct {
	table Table
}

// New validates table and returns a Resolver over a private copy of it.
func New(table Table) (*Resolver, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid action table: %w", err)
	}
	return &Resolver{table: table.Clone()}, nil
}

// Resolve returns the update records configured for routeKey, in declared
// order. A route key with no entry yields an empty sequence and no error.
func (r *Resolver) Resolve(routeKey string) ([]store.UpdateRecord, error) {
	seq, ok := r.table.Routes[routeKey]
	if !ok {
		return []store.UpdateRecord{}, nil
	}

	records := make([]store.UpdateRecord, 0, len(seq))
	for i, id := range seq {
		action, ok := r.table.Actions[id]
		if !ok {
			return nil, &ConfigIntegrityError{RouteKey: routeKey, ActionID: id, Position: i}
		}
		records = append(records, action.Record())
	}
	return records, nil
}

// Action returns the preset named id.
func (r *Resolver) Action(id ActionID) (Action, bool) {
	a, ok := r.table.Actions[id]
	return a, ok
}

// Steps returns a copy of the action sequence configured for routeKey.
func (r *Resolver) Steps(routeKey string) []ActionID {
	return slices.Clone(r.table.Routes[routeKey])
}

// RouteKeys returns every configured route key, sorted.
func (r *Resolver) RouteKeys() []string {
	return slices.Sorted(maps.Keys(r.table.Routes))
}

// ActionIDs returns every configured action, sorted.
func (r *Resolver) ActionIDs() []ActionID {
	return slices.Sorted(maps.Keys(r.table.Actions))
}
