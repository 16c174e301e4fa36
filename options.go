package statekit

import (
	"fmt"
	"log/slog"
)

// Option configures a Machine during construction.
type Option func(*Machine) error

// WithInitialState starts the machine in the given state instead of the
// definition's default. The state must be declared in the definition.
func WithInitialState(s State) Option {
	return func(m *Machine) error {
		if !m.def.IsValidState(s) {
			return NewInvalidStateError(s)
		}
		m.current = s
		return nil
	}
}

// WithSubject binds an external object that every handler receives. The
// machine never inspects, copies, or mutates it; handlers may.
func WithSubject(subject any) Option {
	return func(m *Machine) error {
		m.subject = subject
		return nil
	}
}

// WithHandler registers the handler invoked when the machine transitions into
// state. At most one handler may be registered per state.
func WithHandler(state State, h Handler) Option {
	return func(m *Machine) error {
		if h == nil {
			return fmt.Errorf("%w: nil handler for state %q", ErrInvalidHandler, state)
		}
		if !m.def.IsValidState(state) {
			return NewInvalidStateError(state)
		}
		if _, ok := m.handlers.specific[state]; ok {
			return fmt.Errorf("%w: handler for state %q already registered", ErrInvalidHandler, state)
		}
		m.handlers.specific[state] = h
		return nil
	}
}

// WithWildcardHandler registers the handler invoked on every successful
// transition, before any state-specific handler.
func WithWildcardHandler(h Handler) Option {
	return func(m *Machine) error {
		if h == nil {
			return fmt.Errorf("%w: nil wildcard handler", ErrInvalidHandler)
		}
		if m.handlers.wildcard != nil {
			return fmt.Errorf("%w: wildcard handler already registered", ErrInvalidHandler)
		}
		m.handlers.wildcard = h
		return nil
	}
}

// WithLogger sets the logger used for transition debug logging. The default
// logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) error {
		if logger != nil {
			m.logger = logger
		}
		return nil
	}
}
