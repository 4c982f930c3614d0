package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrWithdrawQuoteCommandIsNotConstructed = errors.New(
	"WithdrawQuoteCommand must be created via NewWithdrawQuoteCommand constructor",
)

// WithdrawQuoteCommand represents a bidder pulling back its own submitted
// quote. No cascade and no notification follow.
type WithdrawQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID   kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawQuoteCommand creates a command to withdraw a quote.
func NewWithdrawQuoteCommand(quoteID, companyID kernel.UUID) (WithdrawQuoteCommand, error) {
	cmd := WithdrawQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return WithdrawQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawQuoteCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawQuoteCommandIsNotConstructed)
}

func (c WithdrawQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c WithdrawQuoteCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *WithdrawQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *WithdrawQuoteCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
