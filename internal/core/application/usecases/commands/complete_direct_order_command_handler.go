package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// CompleteDirectOrderCommandHandler handles either party completing a direct
// order in progress. The other party is notified in-transaction.
type CompleteDirectOrderCommandHandler struct {
	uowFactory DirectOrderUoWFactory
}

// NewCompleteDirectOrderCommandHandler creates a handler for direct order completion.
func NewCompleteDirectOrderCommandHandler(uowFactory DirectOrderUoWFactory) CompleteDirectOrderCommandHandler {
	return CompleteDirectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion.
func (h *CompleteDirectOrderCommandHandler) Handle(ctx context.Context, cmd CompleteDirectOrderCommand) error {
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

	directOrderRepo := uow.DirectOrderRepository()
	existing, err := directOrderRepo.GetForUpdate(ctx, cmd.DirectOrderID())
	if err != nil {
		return err
	}
	if !existing.IsParty(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only a party on the direct order can complete it"),
		)
	}

	if err = existing.Complete(); err != nil {
		return err
	}
	if err = directOrderRepo.Update(ctx, existing); err != nil {
		return err
	}

	var counterpartyID kernel.UUID
	if existing.IsContractor(cmd.CompanyID()) {
		counterpartyID = existing.SubcontractorCompanyID()
	} else {
		counterpartyID = existing.ContractorCompanyID()
	}
	counterparty, err := uow.CompanyRepository().Get(ctx, counterpartyID)
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		counterparty.UserID(),
		notification.TypeDirectOrderCompleted,
		"Direct order completed",
		fmt.Sprintf("Direct order %q was completed", existing.Title()),
		existing.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
