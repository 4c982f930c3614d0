package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// AcceptDirectOrderCommandHandler handles the subcontractor accepting a
// pending direct order. The contractor is notified in-transaction.
type AcceptDirectOrderCommandHandler struct {
	uowFactory DirectOrderUoWFactory
}

// NewAcceptDirectOrderCommandHandler creates a handler for direct order acceptance.
func NewAcceptDirectOrderCommandHandler(uowFactory DirectOrderUoWFactory) AcceptDirectOrderCommandHandler {
	return AcceptDirectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance.
func (h *AcceptDirectOrderCommandHandler) Handle(ctx context.Context, cmd AcceptDirectOrderCommand) error {
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
			errors.New("only the target subcontractor can accept a direct order"),
		)
	}

	if err = existing.Accept(); err != nil {
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
		notification.TypeDirectOrderAccepted,
		"Direct order accepted",
		fmt.Sprintf("Your direct order %q was accepted", existing.Title()),
		existing.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
