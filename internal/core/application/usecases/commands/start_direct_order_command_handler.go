package commands

import (
	"context"
	"errors"

	"buildmarket/internal/pkg/errs"
)

// StartDirectOrderCommandHandler handles either party starting an accepted
// direct order.
type StartDirectOrderCommandHandler struct {
	uowFactory DirectOrderUoWFactory
}

// NewStartDirectOrderCommandHandler creates a handler for starting a direct order.
func NewStartDirectOrderCommandHandler(uowFactory DirectOrderUoWFactory) StartDirectOrderCommandHandler {
	return StartDirectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start. No notification is emitted for this move.
func (h *StartDirectOrderCommandHandler) Handle(ctx context.Context, cmd StartDirectOrderCommand) error {
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
			errors.New("only a party on the direct order can start it"),
		)
	}

	if err = existing.Start(); err != nil {
		return err
	}
	if err = directOrderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
