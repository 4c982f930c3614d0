package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// CompleteOrderCommandHandler handles order completion and its project
// cascade. The project moves straight to completed; if the project row is
// missing the cascade is skipped without failing the order completion. That
// asymmetry between the two lifecycles is deliberate.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !existing.IsParty(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only a party on the order can complete it"),
		)
	}

	if err = existing.Complete(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	projectRepo := uow.ProjectRepository()
	orderProject, err := projectRepo.GetForUpdate(ctx, existing.ProjectID())
	switch {
	case err == nil:
		orderProject.CompleteFromOrder()
		if err = projectRepo.Update(ctx, orderProject); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// The order outlives its project; completion proceeds without the cascade.
	default:
		return err
	}

	counterpartyID, err := existing.Counterparty(cmd.CompanyID())
	if err != nil {
		return err
	}
	counterparty, err := uow.CompanyRepository().Get(ctx, counterpartyID)
	if err != nil {
		return err
	}
	if err = notify(
		ctx,
		uow.NotificationRepository(),
		counterparty.UserID(),
		notification.TypeOrderCompleted,
		"Order completed",
		fmt.Sprintf("Order %s was completed", existing.ID()),
		existing.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
