package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrDeclineDirectOrderCommandIsNotConstructed = errors.New(
	"DeclineDirectOrderCommand must be created via NewDeclineDirectOrderCommand constructor",
)

// DeclineDirectOrderCommand represents the target subcontractor turning down
// a pending direct order, optionally with a free-text reason.
type DeclineDirectOrderCommand struct { //nolint:recvcheck //using for validation
	directOrderID kernel.UUID
	companyID     kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewDeclineDirectOrderCommand creates a command to decline a direct order.
// reason may be empty.
func NewDeclineDirectOrderCommand(
	directOrderID, companyID kernel.UUID, reason string,
) (DeclineDirectOrderCommand, error) {
	cmd := DeclineDirectOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirectOrderID(directOrderID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return DeclineDirectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineDirectOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineDirectOrderCommandIsNotConstructed)
}

func (c DeclineDirectOrderCommand) DirectOrderID() kernel.UUID {
	return c.directOrderID
}

func (c DeclineDirectOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c DeclineDirectOrderCommand) Reason() string {
	return c.reason
}

func (c *DeclineDirectOrderCommand) setDirectOrderID(directOrderID kernel.UUID) error {
	if err := directOrderID.Validate(); err != nil {
		return err
	}
	c.directOrderID = directOrderID
	return nil
}

func (c *DeclineDirectOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
