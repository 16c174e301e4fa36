package statekit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Machine tracks the current state of one entity against a shared Definition.
// It holds the definition reference, the current state, and an optional bound
// subject exposed to handlers.
//
// A Machine is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally. The Definition it references is
// immutable and may be shared freely.
type Machine struct {
	def      *Definition
	current  State
	initial  State
	subject  any
	handlers *handlerSet
	logger   *slog.Logger
}

// New creates a Machine bound to def, starting in the definition's default
// state unless WithInitialState overrides it. Construction either yields a
// ready machine or fails; there is no partially constructed state.
func New(def *Definition, opts ...Option) (*Machine, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", ErrMalformedDefinition)
	}

	m := &Machine{
		def:      def,
		current:  def.DefaultState(),
		handlers: newHandlerSet(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.initial = m.current

	return m, nil
}

// MustNew is like New but panics if construction fails, for machines whose
// shape is fixed in program source.
func MustNew(def *Definition, opts ...Option) *Machine {
	m, err := New(def, opts...)
	if err != nil {
		panic(fmt.Sprintf("statekit: failed to create machine: %v", err))
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	return m.current
}

// Subject returns the bound subject, or nil if none was supplied.
func (m *Machine) Subject() any {
	return m.subject
}

// Definition returns the shared definition the machine is bound to.
func (m *Machine) Definition() *Definition {
	return m.def
}

// IsValid reports whether s is declared in the machine's definition.
func (m *Machine) IsValid(s State) bool {
	return m.def.IsValidState(s)
}

// CanTransitionTo reports whether an edge from the current state to target is
// declared. It does not consult handlers.
func (m *Machine) CanTransitionTo(target State) bool {
	return m.def.IsAllowed(m.current, target)
}

// AllStates returns every declared state in lexicographic order.
func (m *Machine) AllStates() []State {
	return m.def.States()
}

// TransitionTo moves the machine into target, in a fixed order: validate the
// target, validate the edge from the current state, invoke the wildcard
// handler, invoke the state-specific handler, then commit.
//
// Handlers observe the transition in flight: Current still reports the old
// state while they run, and target arrives as their to argument, so a
// state-specific handler can distinguish which predecessor it is leaving.
// A handler error aborts the transition before the commit.
//
// On failure the machine is left unchanged and fully usable:
//   - an undeclared target returns *InvalidStateError;
//   - a missing edge returns *TransitionNotAllowedError carrying both names;
//   - a handler error is returned wrapped.
//
// No handlers run on either validation failure.
func (m *Machine) TransitionTo(ctx context.Context, target State) error {
	if !m.def.IsValidState(target) {
		m.logger.DebugContext(ctx, "transition rejected: unknown state",
			slog.String("from", string(m.current)), slog.String("to", string(target)))
		return NewInvalidStateError(target)
	}
	if !m.def.IsAllowed(m.current, target) {
		m.logger.DebugContext(ctx, "transition rejected: no edge",
			slog.String("from", string(m.current)), slog.String("to", string(target)))
		return NewTransitionNotAllowedError(m.current, target)
	}

	wildcard, specific := m.handlers.resolve(target)
	if wildcard != nil {
		if err := wildcard(ctx, m.current, target, m.subject); err != nil {
			return fmt.Errorf("wildcard handler for %q: %w", target, err)
		}
	}
	if specific != nil {
		if err := specific(ctx, m.current, target, m.subject); err != nil {
			return fmt.Errorf("handler for %q: %w", target, err)
		}
	}

	m.logger.DebugContext(ctx, "transition committed",
		slog.String("from", string(m.current)), slog.String("to", string(target)))
	m.current = target
	return nil
}

// Reset returns the machine to its construction-time initial state. No
// handlers run; Reset is not a transition.
func (m *Machine) Reset() {
	m.current = m.initial
}
