package resolver

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/atlanticdynamic/prepop/internal/store"
)

// ActionID names one preset field update.
type ActionID string

const (
	SetFirstName  ActionID = "SET_FIRSTNAME"
	SetMiddleName ActionID = "SET_MIDDLENAME"
	SetSurname    ActionID = "SET_SURNAME"
)

// Action is the payload of a preset: which field it writes and with what.
type Action struct {
	Field store.FieldID
	Value string
}

// Record turns the action into an update record.
func (a Action) Record() store.UpdateRecord {
	return store.UpdateRecord{Field: a.Field, Value: a.Value}
}

// Table maps route keys to ordered action sequences, and actions to payloads.
type Table struct {
	Actions map[ActionID]Action
	Routes  map[string][]ActionID
}

// DefaultTable returns the built-in table: each route builds the name up
// one more field than the previous.
func DefaultTable() Table {
	return Table{
		Actions: map[ActionID]Action{
			SetFirstName:  {Field: store.FirstName, Value: "Martin"},
			SetMiddleName: {Field: store.MiddleName, Value: "James"},
			SetSurname:    {Field: store.Surname, Value: "Burford"},
		},
		Routes: map[string][]ActionID{
			"firstName":  {SetFirstName},
			"middleName": {SetFirstName, SetMiddleName},
			"surname":    {SetFirstName, SetMiddleName, SetSurname},
		},
	}
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := Table{
		Actions: maps.Clone(t.Actions),
		Routes:  make(map[string][]ActionID, len(t.Routes)),
	}
	if out.Actions == nil {
		out.Actions = map[ActionID]Action{}
	}
	for k, seq := range t.Routes {
		out.Routes[k] = slices.Clone(seq)
	}
	return out
}

// Validate reports every integrity problem in the table. Routes are checked
// in sorted order so the joined error is stable.
func (t Table) Validate() error {
	var errz []error

	for _, id := range slices.Sorted(maps.Keys(t.Actions)) {
		if id == "" {
			errz = append(errz, ErrEmptyActionID)
			continue
		}
		action := t.Actions[id]
		if !action.Field.Valid() {
			errz = append(errz, fmt.Errorf("%w: action %q field %q", ErrUnknownField, id, action.Field))
		}
	}

	for _, key := range slices.Sorted(maps.Keys(t.Routes)) {
		if key == "" {
			errz = append(errz, ErrEmptyRouteKey)
			continue
		}
		seq := t.Routes[key]
		if len(seq) == 0 {
			errz = append(errz, fmt.Errorf("%w: route %q", ErrEmptySequence, key))
			continue
		}
		for i, id := range seq {
			if _, ok := t.Actions[id]; !ok {
				errz = append(errz, &ConfigIntegrityError{RouteKey: key, ActionID: id, Position: i})
			}
		}
	}

	return errors.Join(errz...)
}
