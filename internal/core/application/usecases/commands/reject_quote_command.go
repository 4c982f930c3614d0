package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrRejectQuoteCommandIsNotConstructed = errors.New(
	"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
)

// RejectQuoteCommand represents the project owner rejecting a single
// submitted bid. No cascade follows; the bidder is notified.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID   kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectQuoteCommand creates a command to reject a quote.
func NewRejectQuoteCommand(quoteID, companyID kernel.UUID) (RejectQuoteCommand, error) {
	cmd := RejectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return RejectQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

func (c RejectQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c RejectQuoteCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *RejectQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *RejectQuoteCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
