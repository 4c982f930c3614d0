package order

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	confirmed ──> completed
//
// The enum also carries in_progress and cancelled because the store may hold
// them, but no workflow operation currently reaches either: orders complete
// straight from confirmed, mirroring the observed system.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusConfirmed is the initial status of every order.
	StatusConfirmed

	// StatusInProgress is representable but unreached by any workflow.
	StatusInProgress

	// StatusCompleted is a final state; it also cascades the project to completed.
	StatusCompleted

	// StatusCancelled is representable but unreached by any workflow.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusConfirmed:  "confirmed",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
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
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
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

// Complete transitions the status to StatusCompleted.
// Only a confirmed order can complete.
func (s Status) Complete() (Status, error) {
	if s != StatusConfirmed {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return StatusCompleted, nil
}
