package statekit

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStatesDefined is returned when a definition declares no states at all.
	ErrNoStatesDefined = errors.New("no transitions defined")

	// ErrInvalidDefault is returned when a definition's default state is not one of its declared states.
	ErrInvalidDefault = errors.New("default state is not a declared state")

	// ErrMalformedDefinition is returned when a transition table or definition
	// document cannot be interpreted as a valid machine shape.
	ErrMalformedDefinition = errors.New("malformed machine definition")

	// ErrInvalidHandler is returned when a handler registration is nil or
	// collides with an already registered handler.
	ErrInvalidHandler = errors.New("invalid handler registration")
)

// InvalidStateError indicates a state name that is not declared in the
// machine's definition.
type InvalidStateError struct {
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("'%s' is not a recognized state", e.State)
}

func NewInvalidStateError(state State) *InvalidStateError {
	return &InvalidStateError{State: state}
}

// TransitionNotAllowedError indicates the source state has no declared edge to
// the requested target. Both names are carried for diagnostics.
type TransitionNotAllowedError struct {
	From State
	To   State
}

func (e *TransitionNotAllowedError) Error() string {
	return fmt.Sprintf("'%s' cannot transition to '%s'", e.From, e.To)
}

func NewTransitionNotAllowedError(from, to State) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to}
}

func IsInvalidStateError(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

func IsTransitionNotAllowedError(err error) bool {
	var e *TransitionNotAllowedError
	return errors.As(err, &e)
}
