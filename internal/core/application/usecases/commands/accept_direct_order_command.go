package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrAcceptDirectOrderCommandIsNotConstructed = errors.New(
	"AcceptDirectOrderCommand must be created via NewAcceptDirectOrderCommand constructor",
)

// AcceptDirectOrderCommand represents the target subcontractor taking a
// pending direct order.
type AcceptDirectOrderCommand struct { //nolint:recvcheck //using for validation
	directOrderID kernel.UUID
	companyID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDirectOrderCommand creates a command to accept a direct order.
func NewAcceptDirectOrderCommand(directOrderID, companyID kernel.UUID) (AcceptDirectOrderCommand, error) {
	cmd := AcceptDirectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirectOrderID(directOrderID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return AcceptDirectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDirectOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDirectOrderCommandIsNotConstructed)
}

func (c AcceptDirectOrderCommand) DirectOrderID() kernel.UUID {
	return c.directOrderID
}

func (c AcceptDirectOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *AcceptDirectOrderCommand) setDirectOrderID(directOrderID kernel.UUID) error {
	if err := directOrderID.Validate(); err != nil {
		return err
	}
	c.directOrderID = directOrderID
	return nil
}

func (c *AcceptDirectOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
