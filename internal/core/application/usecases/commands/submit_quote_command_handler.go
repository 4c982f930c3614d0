package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/core/domain/model/quote"
	"buildmarket/internal/pkg/errs"
)

// SubmitQuoteCommandHandler handles bid submission against an open project.
// The project owner is notified inside the same transaction.
type SubmitQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewSubmitQuoteCommandHandler creates a handler for quote submission.
func NewSubmitQuoteCommandHandler(uowFactory QuoteUoWFactory) SubmitQuoteCommandHandler {
	return SubmitQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quote submission command. The project row is locked so
// a concurrent acceptance cascade cannot close the project mid-submission.
func (h *SubmitQuoteCommandHandler) Handle(ctx context.Context, cmd SubmitQuoteCommand) error {
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

	bidder, err := uow.CompanyRepository().Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}
	if bidder.Role() != company.RoleSubcontractor {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only a subcontractor company can submit quotes"),
		)
	}

	bidProject, err := uow.ProjectRepository().GetForUpdate(ctx, cmd.ProjectID())
	if err != nil {
		return err
	}
	if bidProject.IsOwnedBy(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("the project owner cannot bid on its own project"),
		)
	}
	if bidProject.Status() != project.StatusOpen {
		return errs.NewValueIsInvalidErrorWithCause(
			"projectID",
			fmt.Errorf("project %s is not open for bidding", bidProject.ID()),
		)
	}

	quoteRepo := uow.QuoteRepository()
	if prior, err := quoteRepo.GetByProjectAndCompany(ctx, cmd.ProjectID(), cmd.CompanyID()); err == nil {
		return errs.NewObjectAlreadyExistsError("quote", prior.ID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newQuote, err := quote.NewQuote(
		cmd.QuoteID(),
		cmd.ProjectID(),
		cmd.CompanyID(),
		cmd.Amount(),
		cmd.Message(),
		cmd.EstimatedDays(),
	)
	if err != nil {
		return err
	}
	if err = quoteRepo.Add(ctx, newQuote); err != nil {
		return err
	}

	owner, err := uow.CompanyRepository().Get(ctx, bidProject.CompanyID())
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		owner.UserID(),
		notification.TypeQuoteReceived,
		"New quote received",
		fmt.Sprintf("%s submitted a quote on %q", bidder.Name(), bidProject.Title()),
		newQuote.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
