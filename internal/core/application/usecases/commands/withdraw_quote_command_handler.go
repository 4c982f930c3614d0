package commands

import (
	"context"
	"errors"

	"buildmarket/internal/pkg/errs"
)

// WithdrawQuoteCommandHandler handles a bidder withdrawing its own quote.
type WithdrawQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewWithdrawQuoteCommandHandler creates a handler for quote withdrawal.
func NewWithdrawQuoteCommandHandler(uowFactory QuoteUoWFactory) WithdrawQuoteCommandHandler {
	return WithdrawQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal. The quote row is locked so a concurrent
// acceptance cannot race the withdrawal.
func (h *WithdrawQuoteCommandHandler) Handle(ctx context.Context, cmd WithdrawQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()
	existing, err := quoteRepo.GetForUpdate(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}
	if !existing.CompanyID().IsEqual(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the submitting company can withdraw its quote"),
		)
	}

	if err = existing.Withdraw(); err != nil {
		return err
	}
	if err = quoteRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
