package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInheritanceCycle is returned when a superclass chain revisits a class
	ErrInheritanceCycle = errors.New("inheritance cycle")
	// ErrOrphanMethod is returned for a method whose owner is not its enclosing class
	ErrOrphanMethod = errors.New("method without enclosing class")
	// ErrDuplicateEntity is returned when two classes share an identity
	ErrDuplicateEntity = errors.New("duplicate entity identity")
	// ErrEmptyIdentity is returned for a class without a name
	ErrEmptyIdentity = errors.New("empty entity identity")
	// ErrInvalidThreshold is returned for a threshold that cannot classify values
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrUnsupportedFormat is returned for an unknown model or report format
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ModelError reports a structural model invariant violated by one entity
type ModelError struct {
	Scope  Scope
	Entity string
	Err    error
	Detail string
}

func (e *ModelError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %v: %s", e.Scope, e.Entity, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s %s: %v", e.Scope, e.Entity, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Failure converts the error into a reportable entity failure
func (e *ModelError) Failure() EntityFailure {
	return EntityFailure{
		Scope:     e.Scope,
		Entity:    e.Entity,
		Invariant: e.Err.Error(),
		Message:   e.Error(),
		Err:       e,
	}
}
