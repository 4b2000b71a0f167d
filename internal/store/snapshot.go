// Package store holds the three-field name record and applies batches of
// update records to it, producing a new immutable snapshot per batch.
package store

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when an update names a field the record does not have.
var ErrUnknownField = errors.New("unknown field")

// FieldID names one of the record's fields.
type FieldID string

const (
	FirstName  FieldID = "firstName"
	MiddleName FieldID = "middleName"
	Surname    FieldID = "surname"
)

// Fields lists every FieldID in display order.
var Fields = []FieldID{FirstName, MiddleName, Surname}

// ParseFieldID returns the FieldID matching s, or ErrUnknownField.
func ParseFieldID(s string) (FieldID, error) {
	f := FieldID(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// Valid reports whether f is one of the record's fields.
func (f FieldID) Valid() bool {
	switch f {
	case FirstName, MiddleName, Surname:
		return true
	}
	return false
}

func (f FieldID) String() string {
	return string(f)
}

// UpdateRecord sets one field to an absolute value.
type UpdateRecord struct {
	Field FieldID
	Value string
}

func (u UpdateRecord) String() string {
	return fmt.Sprintf("%s=%q", u.Field, u.Value)
}

// Snapshot is a point-in-time value of the record. It is passed by value and
// never modified once published by a Store.
type Snapshot struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	Surname    string `json:"surname"`
}

// Get returns the value of field f, or "" for an unknown field.
func (s Snapshot) Get(f FieldID) string {
	switch f {
	case FirstName:
		return s.FirstName
	case MiddleName:
		return s.MiddleName
	case Surname:
		return s.Surname
	}
	return ""
}

// With returns a copy of s with the update applied. Unknown fields leave the
// copy unchanged.
func (s Snapshot) With(u UpdateRecord) Snapshot {
	switch u.Field {
	case FirstName:
		s.FirstName = u.Value
	case MiddleName:
		s.MiddleName = u.Value
	case Surname:
		s.Surname = u.Value
	}
	return s
}

// Fold applies updates left to right over current and returns the result.
// Each update is an absolute set, so folding the same updates twice gives the
// same snapshot as folding them once.
func Fold(current Snapshot, updates []UpdateRecord) Snapshot {
	next := current
	for _, u := range updates {
		next = next.With(u)
	}
	return next
}

// validateBatch checks every update before any of them are applied.
func validateBatch(updates []UpdateRecord) error {
	var errz []error
	for i, u := range updates {
		if !u.Field.Valid() {
			errz = append(errz, fmt.Errorf("%w: update %d names %q", ErrUnknownField, i, u.Field))
		}
	}
	return errors.Join(errz...)
}
