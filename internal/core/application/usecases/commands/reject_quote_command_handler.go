package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// RejectQuoteCommandHandler handles the owner rejecting a single quote.
type RejectQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewRejectQuoteCommandHandler creates a handler for quote rejection.
func NewRejectQuoteCommandHandler(uowFactory QuoteUoWFactory) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection. The bidder is notified in-transaction.
func (h *RejectQuoteCommandHandler) Handle(ctx context.Context, cmd RejectQuoteCommand) error {
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

	bidProject, err := uow.ProjectRepository().Get(ctx, existing.ProjectID())
	if err != nil {
		return err
	}
	if !bidProject.IsOwnedBy(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the project owner can reject a quote"),
		)
	}

	if err = existing.Reject(); err != nil {
		return err
	}
	if err = quoteRepo.Update(ctx, existing); err != nil {
		return err
	}

	bidder, err := uow.CompanyRepository().Get(ctx, existing.CompanyID())
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		bidder.UserID(),
		notification.TypeQuoteRejected,
		"Quote rejected",
		fmt.Sprintf("Your quote on %q was rejected", bidProject.Title()),
		existing.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
