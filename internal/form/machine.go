package form

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a trigger is fired from a state
// that does not permit it.
var ErrInvalidTransition = errors.New("invalid state transition")

// machine tracks the shell's current state and validates transitions.
// The transition table is fixed: every form instance shares the same
// lifecycle, only the payloads differ.
type machine struct {
	current     State
	transitions map[State]map[Trigger]State
}

// newMachine builds the shell lifecycle machine in its initial state.
func newMachine() *machine {
	return &machine{
		current: StateEditing,
		transitions: map[State]map[Trigger]State{
			StateEditing: {
				TriggerSubmit: StateValidating,
			},
			StateValidating: {
				TriggerReject: StateRejected,
				TriggerAccept: StateSubmitted,
			},
			StateRejected: {
				TriggerResume: StateEditing,
			},
			StateSubmitted: {
				TriggerReset: StateEditing,
			},
		},
	}
}

// State returns the current state.
func (m *machine) State() State {
	return m.current
}

// CanFire returns true if the trigger is permitted in the current state.
func (m *machine) CanFire(trigger Trigger) bool {
	_, ok := m.transitions[m.current][trigger]
	return ok
}

// Fire executes the trigger, transitioning to the new state if permitted.
func (m *machine) Fire(trigger Trigger) error {
	next, ok := m.transitions[m.current][trigger]
	if !ok {
		return fmt.Errorf("%w: cannot fire %s from %s", ErrInvalidTransition, trigger, m.current)
	}
	m.current = next
	return nil
}

// PermittedTriggers returns all triggers that can fire in the current state.
func (m *machine) PermittedTriggers() []Trigger {
	perms := m.transitions[m.current]
	triggers := make([]Trigger, 0, len(perms))
	for t := range perms {
		triggers = append(triggers, t)
	}
	return triggers
}
