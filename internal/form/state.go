package form

// State represents a form shell state in the entry/submission lifecycle.
type State string

const (
	// StateEditing is the resting state: header fields and line items are
	// freely mutable.
	StateEditing State = "EDITING"

	// StateValidating is entered on a submit attempt while schema rules run.
	StateValidating State = "VALIDATING"

	// StateRejected is the terminal outcome of a failed validation pass;
	// the shell resumes editing immediately after notifying.
	StateRejected State = "REJECTED"

	// StateSubmitted is the terminal outcome of a successful submission.
	StateSubmitted State = "SUBMITTED"
)

var validStates = map[State]bool{
	StateEditing:    true,
	StateValidating: true,
	StateRejected:   true,
	StateSubmitted:  true,
}

// IsValid returns true if the state is a valid form shell state.
func (s State) IsValid() bool {
	return validStates[s]
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// Trigger represents an event that moves the form shell between states.
type Trigger string

const (
	// TriggerSubmit starts a submit attempt from the editing state.
	TriggerSubmit Trigger = "SUBMIT"

	// TriggerReject records a failed validation or submission.
	TriggerReject Trigger = "REJECT"

	// TriggerAccept records a successful submission.
	TriggerAccept Trigger = "ACCEPT"

	// TriggerResume returns a rejected form to editing, state preserved.
	TriggerResume Trigger = "RESUME"

	// TriggerReset returns a submitted form to editing.
	TriggerReset Trigger = "RESET"
)

// String returns the string representation of the trigger.
func (t Trigger) String() string {
	return string(t)
}
