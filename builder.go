package statekit

// Builder provides a fluent API for assembling a Definition.
type Builder struct {
	transitions  Transitions
	defaultState State
}

// NewBuilder creates an empty definition builder.
func NewBuilder() *Builder {
	return &Builder{transitions: make(Transitions)}
}

// From declares a state and the destinations reachable from it. Calling From
// again for the same state appends further destinations.
func (b *Builder) From(state State, destinations ...State) *Builder {
	b.transitions[state] = append(b.transitions[state], destinations...)
	return b
}

// Terminal declares a state with no outgoing edges. It is a no-op if the
// state already has edges declared via From.
func (b *Builder) Terminal(state State) *Builder {
	if _, ok := b.transitions[state]; !ok {
		b.transitions[state] = nil
	}
	return b
}

// Default sets the state new machines start in.
func (b *Builder) Default(state State) *Builder {
	b.defaultState = state
	return b
}

// Build validates the accumulated shape and returns the Definition. It
// applies exactly the same validation as NewDefinition.
func (b *Builder) Build() (*Definition, error) {
	return NewDefinition(b.transitions, b.defaultState)
}
