package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrCancelDirectOrderCommandIsNotConstructed = errors.New(
	"CancelDirectOrderCommand must be created via NewCancelDirectOrderCommand constructor",
)

// CancelDirectOrderCommand represents the issuing contractor pulling back a
// direct order before work starts.
type CancelDirectOrderCommand struct { //nolint:recvcheck //using for validation
	directOrderID kernel.UUID
	companyID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDirectOrderCommand creates a command to cancel a direct order.
func NewCancelDirectOrderCommand(directOrderID, companyID kernel.UUID) (CancelDirectOrderCommand, error) {
	cmd := CancelDirectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirectOrderID(directOrderID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return CancelDirectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDirectOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelDirectOrderCommandIsNotConstructed)
}

func (c CancelDirectOrderCommand) DirectOrderID() kernel.UUID {
	return c.directOrderID
}

func (c CancelDirectOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *CancelDirectOrderCommand) setDirectOrderID(directOrderID kernel.UUID) error {
	if err := directOrderID.Validate(); err != nil {
		return err
	}
	c.directOrderID = directOrderID
	return nil
}

func (c *CancelDirectOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
