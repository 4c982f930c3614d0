package directorder

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a direct order.
// It implements a state machine with defined transitions to ensure
// direct orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──┬──> accepted ──┬──> in_progress ──> completed
//	          │               │
//	          ├──> declined   └──> cancelled
//	          └──> cancelled
//
// declined, cancelled and completed are terminal. The machine is pure; which
// party may request each move is enforced by the workflow handlers.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the subcontractor has not answered yet.
	StatusPending

	// StatusAccepted means the subcontractor took the engagement.
	StatusAccepted

	// StatusDeclined is a terminal state, optionally carrying a decline reason.
	StatusDeclined

	// StatusInProgress means work has started.
	StatusInProgress

	// StatusCompleted is a terminal state reached from in_progress.
	StatusCompleted

	// StatusCancelled is a terminal state reached by the contractor from
	// pending or accepted.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusAccepted:   "accepted",
		StatusDeclined:   "declined",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// statusTransitions is the transition table as pure data.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusAccepted, StatusDeclined, StatusCancelled},
		StatusAccepted:   {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusCompleted},
	}
}

// StatusFromString parses the wire/database representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid direct order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid direct order status", s),
		)
	}
	return nil
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the table allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to target and returns it.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition direct order from %s to %s", s, target),
		)
	}
	return target, nil
}
