package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/domain/model/order"
	"buildmarket/internal/core/domain/model/quote"
	"buildmarket/internal/pkg/errs"
)

// AcceptQuoteCommandHandler handles the quote acceptance cascade. As one
// atomic unit it accepts the winning quote, bulk-rejects every other
// submitted quote on the project, creates the order copying the winning
// amount, and closes the project for bidding.
//
// Two racing accepts on the same project serialize on the project row lock;
// the loser re-reads the winner's quote as already resolved and observes a
// conflict, never a second order.
type AcceptQuoteCommandHandler struct {
	uowFactory AcceptQuoteUoWFactory
}

// NewAcceptQuoteCommandHandler creates a handler for quote acceptance.
func NewAcceptQuoteCommandHandler(uowFactory AcceptQuoteUoWFactory) AcceptQuoteCommandHandler {
	return AcceptQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance cascade.
func (h *AcceptQuoteCommandHandler) Handle(ctx context.Context, cmd AcceptQuoteCommand) error {
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

	// Lock order is project first, then quotes. Both racing accepts queue on
	// the project row, so neither can hold a quote lock the other needs.
	quoteRepo := uow.QuoteRepository()
	winner, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}

	projectRepo := uow.ProjectRepository()
	bidProject, err := projectRepo.GetForUpdate(ctx, winner.ProjectID())
	if err != nil {
		return err
	}
	if !bidProject.IsOwnedBy(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the project owner can accept a quote"),
		)
	}

	winner, err = quoteRepo.GetForUpdate(ctx, winner.ID())
	if err != nil {
		return err
	}

	// Re-validated under the lock: the loser of a double-accept race lands here.
	if winner.Status() != quote.StatusSubmitted {
		return errs.NewObjectAlreadyExistsErrorWithCause(
			"quote",
			winner.ID(),
			fmt.Errorf("quote is already %s", winner.Status()),
		)
	}

	if err = winner.Accept(); err != nil {
		return err
	}
	if err = quoteRepo.Update(ctx, winner); err != nil {
		return err
	}

	// Bulk rejection: the rejected bidders receive no notification.
	siblings, err := quoteRepo.GetAllSubmittedByProjectForUpdate(ctx, bidProject.ID())
	if err != nil {
		return err
	}
	for _, sibling := range siblings {
		if sibling.IsEqual(winner) {
			continue
		}
		if err = sibling.Reject(); err != nil {
			return err
		}
		if err = quoteRepo.Update(ctx, sibling); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		bidProject.ID(),
		winner.ID(),
		bidProject.CompanyID(),
		winner.CompanyID(),
		winner.Amount(),
	)
	if err != nil {
		return err
	}
	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = bidProject.Close(); err != nil {
		return err
	}
	if err = projectRepo.Update(ctx, bidProject); err != nil {
		return err
	}

	winnerCompany, err := uow.CompanyRepository().Get(ctx, winner.CompanyID())
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		winnerCompany.UserID(),
		notification.TypeQuoteAccepted,
		"Quote accepted",
		fmt.Sprintf("Your quote on %q was accepted", bidProject.Title()),
		newOrder.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
