package company

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Role is the market-side a company operates on. It is fixed at registration
// and never changes.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleContractor posts projects and issues direct orders.
	RoleContractor

	// RoleSubcontractor submits quotes and receives direct orders.
	RoleSubcontractor
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		RoleContractor:    "contractor",
		RoleSubcontractor: "subcontractor",
	}
}

// RoleFromString parses the wire/database representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleContractor && r != RoleSubcontractor {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
