package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrCompleteDirectOrderCommandIsNotConstructed = errors.New(
	"CompleteDirectOrderCommand must be created via NewCompleteDirectOrderCommand constructor",
)

// CompleteDirectOrderCommand represents either party finishing a direct order
// that is in progress.
type CompleteDirectOrderCommand struct { //nolint:recvcheck //using for validation
	directOrderID kernel.UUID
	companyID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDirectOrderCommand creates a command to complete a direct order.
func NewCompleteDirectOrderCommand(directOrderID, companyID kernel.UUID) (CompleteDirectOrderCommand, error) {
	cmd := CompleteDirectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirectOrderID(directOrderID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return CompleteDirectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDirectOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDirectOrderCommandIsNotConstructed)
}

func (c CompleteDirectOrderCommand) DirectOrderID() kernel.UUID {
	return c.directOrderID
}

func (c CompleteDirectOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *CompleteDirectOrderCommand) setDirectOrderID(directOrderID kernel.UUID) error {
	if err := directOrderID.Validate(); err != nil {
		return err
	}
	c.directOrderID = directOrderID
	return nil
}

func (c *CompleteDirectOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
