package statekit

import (
	"fmt"
	"slices"
)

// State is a named condition an entity can be in. State names are opaque,
// non-empty strings and must be unique within one definition.
type State string

// Transitions declares the permitted edges of a machine. Each key is a state;
// its value lists the destinations reachable from it, in order. A nil or
// empty list marks a terminal state with no outgoing edges.
type Transitions map[State][]State

// Definition is an immutable transition table paired with a default state.
// Once built it never changes, so a single Definition may be shared read-only
// across any number of machines.
type Definition struct {
	table        map[State][]State
	states       []State
	defaultState State
}

// NewDefinition validates the transition table and default state atomically
// and returns an immutable Definition.
//
// Every destination must itself be declared as a key of the table; there is
// no implicit terminality. A state with no outgoing edges is declared
// explicitly with a nil (or empty) destination list.
func NewDefinition(transitions Transitions, defaultState State) (*Definition, error) {
	if len(transitions) == 0 {
		return nil, ErrNoStatesDefined
	}

	table := make(map[State][]State, len(transitions))
	states := make([]State, 0, len(transitions))
	for from, destinations := range transitions {
		if from == "" {
			return nil, fmt.Errorf("%w: empty state name", ErrMalformedDefinition)
		}
		var edges []State
		for _, to := range destinations {
			if to == "" {
				return nil, fmt.Errorf("%w: state %q has an empty destination name", ErrMalformedDefinition, from)
			}
			if slices.Contains(edges, to) {
				return nil, fmt.Errorf("%w: state %q lists destination %q more than once", ErrMalformedDefinition, from, to)
			}
			edges = append(edges, to)
		}
		table[from] = edges
		states = append(states, from)
	}

	for from, edges := range table {
		for _, to := range edges {
			if _, ok := table[to]; !ok {
				return nil, fmt.Errorf("%w: state %q has undeclared destination %q", ErrMalformedDefinition, from, to)
			}
		}
	}

	if _, ok := table[defaultState]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDefault, defaultState)
	}

	slices.Sort(states)

	return &Definition{
		table:        table,
		states:       states,
		defaultState: defaultState,
	}, nil
}

// MustNewDefinition is like NewDefinition but panics on failure, for
// definitions declared statically in program source.
func MustNewDefinition(transitions Transitions, defaultState State) *Definition {
	def, err := NewDefinition(transitions, defaultState)
	if err != nil {
		panic(fmt.Sprintf("statekit: failed to build definition: %v", err))
	}
	return def
}

// States returns every declared state in lexicographic order, regardless of
// declaration order. The returned slice is a copy.
func (d *Definition) States() []State {
	return slices.Clone(d.states)
}

// DefaultState returns the state new machines start in when no initial state
// override is supplied.
func (d *Definition) DefaultState() State {
	return d.defaultState
}

// IsValidState reports whether s is declared in the definition.
func (d *Definition) IsValidState(s State) bool {
	_, ok := d.table[s]
	return ok
}

// IsTerminal reports whether s is a declared state with no outgoing edges.
func (d *Definition) IsTerminal(s State) bool {
	edges, ok := d.table[s]
	return ok && len(edges) == 0
}

// IsAllowed reports whether an edge from one state to another is declared.
// Self-transitions are allowed only when explicitly listed.
func (d *Definition) IsAllowed(from, to State) bool {
	return slices.Contains(d.table[from], to)
}

// Outgoing returns a copy of the declared edge list for a state in
// declaration order, for diagnostics. A terminal state yields a nil slice
// with ok true; an undeclared state yields nil with ok false.
func (d *Definition) Outgoing(from State) (destinations []State, ok bool) {
	edges, ok := d.table[from]
	if !ok {
		return nil, false
	}
	return slices.Clone(edges), true
}

// Lookup resolves a symbolic state name to its State, reporting whether the
// definition declares it. Callers that reference states symbolically should
// resolve them once at startup instead of scattering raw strings.
func (d *Definition) Lookup(name string) (State, bool) {
	s := State(name)
	if _, ok := d.table[s]; ok {
		return s, true
	}
	return "", false
}
