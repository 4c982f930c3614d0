package commands

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"
)

// CreateDirectOrderCommandHandler handles issuing a direct order to a chosen
// subcontractor. The target is notified inside the same transaction.
type CreateDirectOrderCommandHandler struct {
	uowFactory DirectOrderUoWFactory
}

// NewCreateDirectOrderCommandHandler creates a handler for direct order creation.
func NewCreateDirectOrderCommandHandler(uowFactory DirectOrderUoWFactory) CreateDirectOrderCommandHandler {
	return CreateDirectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the direct order creation command.
func (h *CreateDirectOrderCommandHandler) Handle(ctx context.Context, cmd CreateDirectOrderCommand) error {
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

	companyRepo := uow.CompanyRepository()
	contractor, err := companyRepo.Get(ctx, cmd.ContractorCompanyID())
	if err != nil {
		return err
	}
	if contractor.Role() != company.RoleContractor {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"contractorCompanyID",
			errors.New("only a contractor company can issue direct orders"),
		)
	}

	subcontractor, err := companyRepo.Get(ctx, cmd.SubcontractorCompanyID())
	if err != nil {
		return err
	}
	if subcontractor.Role() != company.RoleSubcontractor {
		return errs.NewValueIsInvalidErrorWithCause(
			"subcontractorCompanyID",
			fmt.Errorf("company %s is not a subcontractor", subcontractor.ID()),
		)
	}

	newDirectOrder, err := directorder.NewDirectOrder(
		cmd.DirectOrderID(),
		cmd.ContractorCompanyID(),
		cmd.SubcontractorCompanyID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Location(),
		cmd.Amount(),
		cmd.Deadline(),
		cmd.Specialty(),
	)
	if err != nil {
		return err
	}
	if err = uow.DirectOrderRepository().Add(ctx, newDirectOrder); err != nil {
		return err
	}

	if err = notify(
		ctx,
		uow.NotificationRepository(),
		subcontractor.UserID(),
		notification.TypeDirectOrderReceived,
		"New direct order",
		fmt.Sprintf("%s sent you a direct order %q", contractor.Name(), newDirectOrder.Title()),
		newDirectOrder.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
