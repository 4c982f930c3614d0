package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents either party finishing a confirmed order,
// which cascades the originating project to completed.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(orderID, companyID kernel.UUID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
