package commands

import (
	"context"
	"errors"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/pkg/errs"
)

// CreateProjectCommandHandler handles the business logic for posting a project.
// Only a company registered with the contractor role may post projects.
type CreateProjectCommandHandler struct {
	uowFactory ProjectUoWFactory
}

// NewCreateProjectCommandHandler creates a handler for project creation.
func NewCreateProjectCommandHandler(uowFactory ProjectUoWFactory) CreateProjectCommandHandler {
	return CreateProjectCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the project creation command.
func (h *CreateProjectCommandHandler) Handle(ctx context.Context, cmd CreateProjectCommand) error {
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

	caller, err := uow.CompanyRepository().Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}
	if caller.Role() != company.RoleContractor {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"companyID",
			errors.New("only a contractor company can post projects"),
		)
	}

	newProject, err := project.NewProject(
		cmd.ProjectID(),
		cmd.CompanyID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Location(),
		cmd.BudgetMin(),
		cmd.BudgetMax(),
		cmd.Specialty(),
		cmd.Deadline(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProjectRepository().Add(ctx, newProject); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
