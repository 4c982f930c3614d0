package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrStartDirectOrderCommandIsNotConstructed = errors.New(
	"StartDirectOrderCommand must be created via NewStartDirectOrderCommand constructor",
)

// StartDirectOrderCommand represents either party moving an accepted direct
// order into progress. Uniquely among the lifecycle moves, starting emits no
// notification.
type StartDirectOrderCommand struct { //nolint:recvcheck //using for validation
	directOrderID kernel.UUID
	companyID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDirectOrderCommand creates a command to start a direct order.
func NewStartDirectOrderCommand(directOrderID, companyID kernel.UUID) (StartDirectOrderCommand, error) {
	cmd := StartDirectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirectOrderID(directOrderID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return StartDirectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDirectOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartDirectOrderCommandIsNotConstructed)
}

func (c StartDirectOrderCommand) DirectOrderID() kernel.UUID {
	return c.directOrderID
}

func (c StartDirectOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *StartDirectOrderCommand) setDirectOrderID(directOrderID kernel.UUID) error {
	if err := directOrderID.Validate(); err != nil {
		return err
	}
	c.directOrderID = directOrderID
	return nil
}

func (c *StartDirectOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
