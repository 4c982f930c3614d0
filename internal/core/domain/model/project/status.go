package project

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a project.
// It implements a state machine with defined transitions to ensure
// projects follow the correct business workflow.
//
// State transitions:
//
//	draft ──┬──> open ──┬──> closed ──> in_progress ──> completed
//	        │           │
//	        └───────────┴──> cancelled
//
// The machine is pure: it validates the move from the current status to a
// requested one and carries no knowledge of who requested it. Ownership
// authorization is the caller's responsibility.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status when a project is first created.
	// Draft projects are invisible to bidders.
	StatusDraft

	// StatusOpen means the project accepts quotes.
	StatusOpen

	// StatusClosed means a quote was accepted and bidding has ended.
	StatusClosed

	// StatusInProgress means work on the project has started.
	StatusInProgress

	// StatusCompleted is a final state reached when the resulting order completes.
	StatusCompleted

	// StatusCancelled is a final state reached from draft or open.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusDraft:      "draft",
		StatusOpen:       "open",
		StatusClosed:     "closed",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// statusTransitions is the transition table as pure data: each status maps to
// the set of statuses a caller may request next. Absent statuses are terminal.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:      {StatusOpen, StatusCancelled},
		StatusOpen:       {StatusClosed, StatusCancelled},
		StatusClosed:     {StatusInProgress},
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
		fmt.Errorf("%q is not a valid project status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid project status", s),
		)
	}
	return nil
}

// String returns the snake_case name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
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
//
// Returns:
//   - (target, nil) when the transition table allows the move
//   - (StatusUnknown, error) identifying both the requested and the current
//     status when it does not
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition project from %s to %s", s, target),
		)
	}
	return target, nil
}
