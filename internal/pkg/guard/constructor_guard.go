// Package guard implements the constructor-guard pattern used by commands and
// value objects to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. A zero-value struct fails Validate,
// which keeps invariants checked at construction from being bypassed.
//
// Example:
//
//	type SubmitQuoteCommand struct {
//	    projectID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewSubmitQuoteCommand(projectID kernel.UUID) (SubmitQuoteCommand, error) {
//	    if err := projectID.Validate(); err != nil {
//	        return SubmitQuoteCommand{}, err
//	    }
//	    return SubmitQuoteCommand{projectID: projectID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitQuoteCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitQuoteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
