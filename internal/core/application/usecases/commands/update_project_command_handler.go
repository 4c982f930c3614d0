package commands

import (
	"context"
	"errors"

	"buildmarket/internal/pkg/errs"
)

// UpdateProjectCommandHandler handles project detail updates.
type UpdateProjectCommandHandler struct {
	uowFactory ProjectUoWFactory
}

// NewUpdateProjectCommandHandler creates a handler for project updates.
func NewUpdateProjectCommandHandler(uowFactory ProjectUoWFactory) UpdateProjectCommandHandler {
	return UpdateProjectCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the project update command.
func (h *UpdateProjectCommandHandler) Handle(ctx context.Context, cmd UpdateProjectCommand) error {
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
	existing, err := projectRepo.Get(ctx, cmd.ProjectID())
	if err != nil {
		return err
	}
	if !existing.IsOwnedBy(cmd.CompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only the owning company can update the project"),
		)
	}

	if err = existing.UpdateDetails(
		cmd.Title(),
		cmd.Description(),
		cmd.Location(),
		cmd.BudgetMin(),
		cmd.BudgetMax(),
		cmd.Specialty(),
		cmd.Deadline(),
	); err != nil {
		return err
	}

	if err = projectRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
