package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Lifecycle(t *testing.T) {
	t.Run("starts in editing", func(t *testing.T) {
		m := newMachine()
		assert.Equal(t, StateEditing, m.State())
	})

	t.Run("rejection path returns to editing", func(t *testing.T) {
		m := newMachine()
		require.NoError(t, m.Fire(TriggerSubmit))
		assert.Equal(t, StateValidating, m.State())
		require.NoError(t, m.Fire(TriggerReject))
		assert.Equal(t, StateRejected, m.State())
		require.NoError(t, m.Fire(TriggerResume))
		assert.Equal(t, StateEditing, m.State())
	})

	t.Run("acceptance path returns to editing via reset", func(t *testing.T) {
		m := newMachine()
		require.NoError(t, m.Fire(TriggerSubmit))
		require.NoError(t, m.Fire(TriggerAccept))
		assert.Equal(t, StateSubmitted, m.State())
		require.NoError(t, m.Fire(TriggerReset))
		assert.Equal(t, StateEditing, m.State())
	})
}

func TestMachine_InvalidTransitions(t *testing.T) {
	m := newMachine()

	err := m.Fire(TriggerAccept)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StateEditing, m.State(), "failed fire leaves state unchanged")

	assert.False(t, m.CanFire(TriggerReject))
	assert.True(t, m.CanFire(TriggerSubmit))
}

func TestMachine_PermittedTriggers(t *testing.T) {
	m := newMachine()
	assert.Equal(t, []Trigger{TriggerSubmit}, m.PermittedTriggers())

	require.NoError(t, m.Fire(TriggerSubmit))
	perms := m.PermittedTriggers()
	assert.Len(t, perms, 2)
	assert.Contains(t, perms, TriggerAccept)
	assert.Contains(t, perms, TriggerReject)
}
