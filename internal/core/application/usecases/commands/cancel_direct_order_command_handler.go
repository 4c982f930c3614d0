package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// CancelDirectOrderCommandHandler handles the contractor cancelling a direct
// order that has not started yet. The subcontractor is notified in-transaction.
type CancelDirectOrderCommandHandler struct {
	uowFactory DirectOrderUoWFactory
}

// NewCancelDirectOrderCommandHandler creates a handler for direct order cancellation.
func NewCancelDirectOrderCommandHandler(uowFactory DirectOrderUoWFactory) CancelDirectOrderCommandHandler {
	return CancelDirectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
func (h *CancelDirectOrderCommandHandler) Handle(ctx context.Context, cmd CancelDirectOrderCommand) error {
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
	if !existing.IsContractor(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the issuing contractor can cancel a direct order"),
		)
	}

	if err = existing.Cancel(); err != nil {
		return err
	}
	if err = directOrderRepo.Update(ctx, existing); err != nil {
		return err
	}

	subcontractor, err := uow.CompanyRepository().Get(ctx, existing.SubcontractorCompanyID())
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		subcontractor.UserID(),
		notification.TypeDirectOrderCancelled,
		"Direct order cancelled",
		fmt.Sprintf("Direct order %q was cancelled", existing.Title()),
		existing.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
