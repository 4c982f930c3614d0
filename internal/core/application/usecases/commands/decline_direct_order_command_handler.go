package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// DeclineDirectOrderCommandHandler handles the subcontractor declining a
// pending direct order. The reason, if any, is persisted with the flip and
// the contractor is notified in-transaction.
type DeclineDirectOrderCommandHandler struct {
	uowFactory DirectOrderUoWFactory
}

// NewDeclineDirectOrderCommandHandler creates a handler for direct order decline.
func NewDeclineDirectOrderCommandHandler(uowFactory DirectOrderUoWFactory) DeclineDirectOrderCommandHandler {
	return DeclineDirectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline.
func (h *DeclineDirectOrderCommandHandler) Handle(ctx context.Context, cmd DeclineDirectOrderCommand) error {
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
	if !existing.IsSubcontractor(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the target subcontractor can decline a direct order"),
		)
	}

	if err = existing.Decline(cmd.Reason()); err != nil {
		return err
	}
	if err = directOrderRepo.Update(ctx, existing); err != nil {
		return err
	}

	contractor, err := uow.CompanyRepository().Get(ctx, existing.ContractorCompanyID())
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		contractor.UserID(),
		notification.TypeDirectOrderDeclined,
		"Direct order declined",
		fmt.Sprintf("Your direct order %q was declined", existing.Title()),
		existing.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
