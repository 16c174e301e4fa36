package statekit

import "context"

// Handler runs as part of a transition into a state. It receives the state
// being left and the state being entered, plus the machine's bound subject
// (nil if none). While a handler runs the transition is still in flight:
// Machine.Current reports from, and to has not yet been committed. Returning
// an error aborts the transition before the state changes.
type Handler func(ctx context.Context, from, to State, subject any) error

// handlerSet is the per-machine handler registry: at most one handler per
// destination state, plus at most one wildcard handler that fires on every
// transition before the state-specific one.
type handlerSet struct {
	wildcard Handler
	specific map[State]Handler
}

func newHandlerSet() *handlerSet {
	return &handlerSet{specific: make(map[State]Handler)}
}

// resolve returns the wildcard and state-specific handlers applicable to a
// transition into target. Either or both may be nil; that is the common case,
// not an error.
func (hs *handlerSet) resolve(target State) (wildcard, specific Handler) {
	return hs.wildcard, hs.specific[target]
}
