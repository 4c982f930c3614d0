package commands

import (
	"errors"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrCreateDirectOrderCommandIsNotConstructed = errors.New(
	"CreateDirectOrderCommand must be created via NewCreateDirectOrderCommand constructor",
)

// CreateDirectOrderCommand represents a contractor engaging a chosen
// subcontractor without a bidding round.
type CreateDirectOrderCommand struct { //nolint:recvcheck //using for validation
	directOrderID          kernel.UUID
	contractorCompanyID    kernel.UUID
	subcontractorCompanyID kernel.UUID
	title                  string
	description            string
	location               string
	amount                 kernel.Money
	deadline               *time.Time
	specialty              string

	guard guard.ConstructorGuard
}

// NewCreateDirectOrderCommand creates a command to issue a direct order.
// Self-dealing and the required title/amount are checked by the aggregate
// constructor inside the handler.
func NewCreateDirectOrderCommand(
	directOrderID kernel.UUID,
	contractorCompanyID kernel.UUID,
	subcontractorCompanyID kernel.UUID,
	title string,
	description string,
	location string,
	amount kernel.Money,
	deadline *time.Time,
	specialty string,
) (CreateDirectOrderCommand, error) {
	cmd := CreateDirectOrderCommand{
		title:       title,
		description: description,
		location:    location,
		amount:      amount,
		deadline:    deadline,
		specialty:   specialty,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDirectOrderID(directOrderID),
		cmd.setContractorCompanyID(contractorCompanyID),
		cmd.setSubcontractorCompanyID(subcontractorCompanyID),
	); err != nil {
		return CreateDirectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDirectOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDirectOrderCommandIsNotConstructed)
}

func (c CreateDirectOrderCommand) DirectOrderID() kernel.UUID {
	return c.directOrderID
}

func (c CreateDirectOrderCommand) ContractorCompanyID() kernel.UUID {
	return c.contractorCompanyID
}

func (c CreateDirectOrderCommand) SubcontractorCompanyID() kernel.UUID {
	return c.subcontractorCompanyID
}

func (c CreateDirectOrderCommand) Title() string {
	return c.title
}

func (c CreateDirectOrderCommand) Description() string {
	return c.description
}

func (c CreateDirectOrderCommand) Location() string {
	return c.location
}

func (c CreateDirectOrderCommand) Amount() kernel.Money {
	return c.amount
}

func (c CreateDirectOrderCommand) Deadline() *time.Time {
	return c.deadline
}

func (c CreateDirectOrderCommand) Specialty() string {
	return c.specialty
}

func (c *CreateDirectOrderCommand) setDirectOrderID(directOrderID kernel.UUID) error {
	if err := directOrderID.Validate(); err != nil {
		return err
	}
	c.directOrderID = directOrderID
	return nil
}

func (c *CreateDirectOrderCommand) setContractorCompanyID(contractorCompanyID kernel.UUID) error {
	if err := contractorCompanyID.Validate(); err != nil {
		return err
	}
	c.contractorCompanyID = contractorCompanyID
	return nil
}

func (c *CreateDirectOrderCommand) setSubcontractorCompanyID(subcontractorCompanyID kernel.UUID) error {
	if err := subcontractorCompanyID.Validate(); err != nil {
		return err
	}
	c.subcontractorCompanyID = subcontractorCompanyID
	return nil
}
