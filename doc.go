// Package statekit provides a small, embeddable finite-state-machine engine:
// a declared set of states, a table of permitted transitions, and a default
// state, with user-supplied handlers invoked around each transition.
//
// The package separates the immutable machine shape (Definition) from the
// mutable per-entity tracker (Machine). A Definition is built once, either
// directly from a Transitions table, through the fluent Builder, or loaded
// from a JSON/YAML document, and shared read-only across any number of
// machines.
//
// # Architecture
//
//  1. Definition: validated, immutable transition table plus default state.
//     Every destination must be declared as a table key; terminal states are
//     declared explicitly with a nil destination list.
//  2. Loader: ParseJSON/ParseYAML turn an external document into the same
//     Definition type that direct declaration produces, so both paths behave
//     identically.
//  3. Handlers: an explicit registry per machine, at most one handler per
//     destination state plus one optional wildcard handler that fires on
//     every transition.
//  4. Machine: current state, definition reference, optional bound subject,
//     and the TransitionTo operation.
//
// # Usage
//
//	def := statekit.MustNewDefinition(statekit.Transitions{
//		"draft":     {"in_review"},
//		"in_review": {"published", "rejected"},
//		"published": nil,
//		"rejected":  {"draft"},
//	}, "draft")
//
//	m := statekit.MustNew(def,
//		statekit.WithSubject(post),
//		statekit.WithWildcardHandler(func(ctx context.Context, from, to statekit.State, subject any) error {
//			log.Printf("%s -> %s", from, to)
//			return nil
//		}),
//		statekit.WithHandler("published", func(ctx context.Context, from, to statekit.State, subject any) error {
//			return subject.(*Post).Publish(ctx)
//		}),
//	)
//
//	if err := m.TransitionTo(ctx, "in_review"); err != nil { /* ... */ }
//
// # Transition Order
//
// TransitionTo follows a fixed order: validate the target name, validate the
// edge from the current state, invoke the wildcard handler, invoke the
// state-specific handler, then commit the new state. Handlers always see the
// transition in flight: Current() still reports the old state while the new
// state arrives as their argument. A handler error aborts before the commit,
// and a failed call leaves the machine unchanged and fully usable.
//
// # Error Handling
//
// Construction-time failures use sentinels (ErrNoStatesDefined,
// ErrInvalidDefault, ErrMalformedDefinition, ErrInvalidHandler) suitable for
// errors.Is. Operation-time failures use structured types with predicates:
//
//	if statekit.IsInvalidStateError(err) { /* unknown state name */ }
//	if statekit.IsTransitionNotAllowedError(err) { /* no such edge */ }
//
// # Concurrency
//
// The engine is synchronous and single-threaded by construction: it performs
// no I/O, schedules nothing, and provides no locking. A Definition is
// immutable and safe to share; a Machine is not safe for concurrent use
// without external synchronization.
package statekit
