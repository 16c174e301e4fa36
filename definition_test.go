package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statekit"
)

func workflowTransitions() statekit.Transitions {
	return statekit.Transitions{
		"created":     {"waiting"},
		"waiting":     {"in_progress", "done"},
		"in_progress": {"waiting", "done"},
		"done":        nil,
	}
}

func TestNewDefinition(t *testing.T) {
	t.Parallel()

	t.Run("valid table", func(t *testing.T) {
		t.Parallel()

		def, err := statekit.NewDefinition(workflowTransitions(), "created")
		require.NoError(t, err)
		assert.Equal(t, statekit.State("created"), def.DefaultState())
	})

	t.Run("states are sorted regardless of declaration order", func(t *testing.T) {
		t.Parallel()

		def, err := statekit.NewDefinition(workflowTransitions(), "created")
		require.NoError(t, err)
		assert.Equal(t, []statekit.State{"created", "done", "in_progress", "waiting"}, def.States())
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		_, err := statekit.NewDefinition(statekit.Transitions{}, "created")
		assert.ErrorIs(t, err, statekit.ErrNoStatesDefined)

		_, err = statekit.NewDefinition(nil, "created")
		assert.ErrorIs(t, err, statekit.ErrNoStatesDefined)
	})

	t.Run("default state must be declared", func(t *testing.T) {
		t.Parallel()

		_, err := statekit.NewDefinition(workflowTransitions(), "archived")
		assert.ErrorIs(t, err, statekit.ErrInvalidDefault)
	})

	t.Run("destinations must be declared keys", func(t *testing.T) {
		t.Parallel()

		_, err := statekit.NewDefinition(statekit.Transitions{
			"start": {"end"},
		}, "start")
		assert.ErrorIs(t, err, statekit.ErrMalformedDefinition)
	})

	t.Run("empty state names are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := statekit.NewDefinition(statekit.Transitions{
			"": {"done"},
		}, "done")
		assert.ErrorIs(t, err, statekit.ErrMalformedDefinition)

		_, err = statekit.NewDefinition(statekit.Transitions{
			"start": {""},
		}, "start")
		assert.ErrorIs(t, err, statekit.ErrMalformedDefinition)
	})

	t.Run("duplicate destinations are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := statekit.NewDefinition(statekit.Transitions{
			"start": {"end", "end"},
			"end":   nil,
		}, "start")
		assert.ErrorIs(t, err, statekit.ErrMalformedDefinition)
	})
}

func TestMustNewDefinition(t *testing.T) {
	t.Parallel()

	t.Run("returns definition on success", func(t *testing.T) {
		t.Parallel()

		def := statekit.MustNewDefinition(workflowTransitions(), "created")
		assert.True(t, def.IsValidState("waiting"))
	})

	t.Run("panics on invalid shape", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() {
			statekit.MustNewDefinition(workflowTransitions(), "archived")
		})
	})
}

func TestDefinitionQueries(t *testing.T) {
	t.Parallel()

	def := statekit.MustNewDefinition(workflowTransitions(), "created")

	t.Run("IsValidState", func(t *testing.T) {
		t.Parallel()

		assert.True(t, def.IsValidState("created"))
		assert.True(t, def.IsValidState("done"))
		assert.False(t, def.IsValidState("archived"))
		assert.False(t, def.IsValidState(""))
	})

	t.Run("IsAllowed", func(t *testing.T) {
		t.Parallel()

		assert.True(t, def.IsAllowed("created", "waiting"))
		assert.True(t, def.IsAllowed("in_progress", "done"))
		assert.False(t, def.IsAllowed("created", "done"))
		assert.False(t, def.IsAllowed("done", "created"))
		assert.False(t, def.IsAllowed("archived", "done"))
	})

	t.Run("self transition only when listed", func(t *testing.T) {
		t.Parallel()

		assert.False(t, def.IsAllowed("waiting", "waiting"))

		looping := statekit.MustNewDefinition(statekit.Transitions{
			"polling": {"polling", "done"},
			"done":    nil,
		}, "polling")
		assert.True(t, looping.IsAllowed("polling", "polling"))
	})

	t.Run("IsTerminal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, def.IsTerminal("done"))
		assert.False(t, def.IsTerminal("waiting"))
		assert.False(t, def.IsTerminal("archived"))
	})

	t.Run("Outgoing preserves declaration order", func(t *testing.T) {
		t.Parallel()

		edges, ok := def.Outgoing("waiting")
		require.True(t, ok)
		assert.Equal(t, []statekit.State{"in_progress", "done"}, edges)
	})

	t.Run("Outgoing for terminal and unknown states", func(t *testing.T) {
		t.Parallel()

		edges, ok := def.Outgoing("done")
		assert.True(t, ok)
		assert.Empty(t, edges)

		edges, ok = def.Outgoing("archived")
		assert.False(t, ok)
		assert.Nil(t, edges)
	})

	t.Run("Lookup", func(t *testing.T) {
		t.Parallel()

		s, ok := def.Lookup("in_progress")
		assert.True(t, ok)
		assert.Equal(t, statekit.State("in_progress"), s)

		_, ok = def.Lookup("archived")
		assert.False(t, ok)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		t.Parallel()

		states := def.States()
		states[0] = "mutated"
		assert.Equal(t, []statekit.State{"created", "done", "in_progress", "waiting"}, def.States())

		edges, ok := def.Outgoing("waiting")
		require.True(t, ok)
		edges[0] = "mutated"
		fresh, _ := def.Outgoing("waiting")
		assert.Equal(t, []statekit.State{"in_progress", "done"}, fresh)
	})

	t.Run("empty destination list is terminal", func(t *testing.T) {
		t.Parallel()

		d := statekit.MustNewDefinition(statekit.Transitions{
			"start": {"end"},
			"end":   {},
		}, "start")
		assert.True(t, d.IsTerminal("end"))
	})
}
