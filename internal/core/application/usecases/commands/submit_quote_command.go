package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrSubmitQuoteCommandIsNotConstructed = errors.New(
	"SubmitQuoteCommand must be created via NewSubmitQuoteCommand constructor",
)

// SubmitQuoteCommand represents a subcontractor's bid against an open project.
//
// Example:
//
//	amount, _ := kernel.NewMoney(2_000_000)
//	cmd, err := NewSubmitQuoteCommand(
//	    kernel.NewUUID(), projectID, bidderID, amount, "Can start next week", nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid quote data: %w", err)
//	}
//
//	handler := NewSubmitQuoteCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit quote: %w", err)
//	}
type SubmitQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID       kernel.UUID
	projectID     kernel.UUID
	companyID     kernel.UUID
	amount        kernel.Money
	message       string
	estimatedDays *int

	guard guard.ConstructorGuard
}

// NewSubmitQuoteCommand creates a command to submit a new quote.
// Amount and estimated days are checked by the aggregate constructor inside
// the handler; the command only validates identities.
func NewSubmitQuoteCommand(
	quoteID kernel.UUID,
	projectID kernel.UUID,
	companyID kernel.UUID,
	amount kernel.Money,
	message string,
	estimatedDays *int,
) (SubmitQuoteCommand, error) {
	cmd := SubmitQuoteCommand{
		amount:        amount,
		message:       message,
		estimatedDays: estimatedDays,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setProjectID(projectID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return SubmitQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuoteCommandIsNotConstructed)
}

func (c SubmitQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c SubmitQuoteCommand) ProjectID() kernel.UUID {
	return c.projectID
}

func (c SubmitQuoteCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c SubmitQuoteCommand) Amount() kernel.Money {
	return c.amount
}

func (c SubmitQuoteCommand) Message() string {
	return c.message
}

func (c SubmitQuoteCommand) EstimatedDays() *int {
	return c.estimatedDays
}

func (c *SubmitQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *SubmitQuoteCommand) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return err
	}
	c.projectID = projectID
	return nil
}

func (c *SubmitQuoteCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
