package quote

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a quote.
//
// State transitions:
//
//	submitted ──┬──> accepted
//	            ├──> rejected
//	            └──> withdrawn
//
// accepted, rejected and withdrawn are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusSubmitted is the initial status of every quote.
	StatusSubmitted

	// StatusAccepted means the project owner accepted this bid.
	StatusAccepted

	// StatusRejected means the project owner rejected this bid, either
	// individually or as a sibling of an accepted quote.
	StatusRejected

	// StatusWithdrawn means the bidder pulled the quote back.
	StatusWithdrawn
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusSubmitted: "submitted",
		StatusAccepted:  "accepted",
		StatusRejected:  "rejected",
		StatusWithdrawn: "withdrawn",
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
		fmt.Errorf("%q is not a valid quote status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid quote status", s),
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

// Accept transitions the status to StatusAccepted.
// Only a submitted quote can be accepted.
func (s Status) Accept() (Status, error) {
	if s != StatusSubmitted {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s),
		)
	}
	return StatusAccepted, nil
}

// Reject transitions the status to StatusRejected.
// Only a submitted quote can be rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusSubmitted {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s),
		)
	}
	return StatusRejected, nil
}

// Withdraw transitions the status to StatusWithdrawn.
// Only a submitted quote can be withdrawn.
func (s Status) Withdraw() (Status, error) {
	if s != StatusSubmitted {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to withdraw", s),
		)
	}
	return StatusWithdrawn, nil
}
