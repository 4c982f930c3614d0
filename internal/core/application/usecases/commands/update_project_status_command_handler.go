package commands

import (
	"context"
	"errors"

	"buildmarket/internal/pkg/errs"
)

// UpdateProjectStatusCommandHandler handles project lifecycle moves requested
// by the owner. The transition table itself lives on the status type; this
// handler adds ownership authorization and the transactional write.
type UpdateProjectStatusCommandHandler struct {
	uowFactory ProjectUoWFactory
}

// NewUpdateProjectStatusCommandHandler creates a handler for project status changes.
func NewUpdateProjectStatusCommandHandler(uowFactory ProjectUoWFactory) UpdateProjectStatusCommandHandler {
	return UpdateProjectStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. The project row is locked so a
// concurrent quote acceptance cannot interleave with the owner's move.
func (h *UpdateProjectStatusCommandHandler) Handle(ctx context.Context, cmd UpdateProjectStatusCommand) error {
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

	projectRepo := uow.ProjectRepository()
	existing, err := projectRepo.GetForUpdate(ctx, cmd.ProjectID())
	if err != nil {
		return err
	}
	if !existing.IsOwnedBy(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the owning company can change the project status"),
		)
	}

	if err = existing.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = projectRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
