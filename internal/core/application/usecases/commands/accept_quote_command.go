package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrAcceptQuoteCommandIsNotConstructed = errors.New(
	"AcceptQuoteCommand must be created via NewAcceptQuoteCommand constructor",
)

// AcceptQuoteCommand represents the project owner accepting a submitted bid,
// which triggers the full acceptance cascade: sibling rejection, order
// creation and project closure.
type AcceptQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID   kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptQuoteCommand creates a command to accept a quote.
// companyID identifies the caller, expected to own the quote's project.
func NewAcceptQuoteCommand(quoteID, companyID kernel.UUID) (AcceptQuoteCommand, error) {
	cmd := AcceptQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return AcceptQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuoteCommandIsNotConstructed)
}

func (c AcceptQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c AcceptQuoteCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *AcceptQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *AcceptQuoteCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
