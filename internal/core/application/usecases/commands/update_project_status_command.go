package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/pkg/guard"
)

var ErrUpdateProjectStatusCommandIsNotConstructed = errors.New(
	"UpdateProjectStatusCommand must be created via NewUpdateProjectStatusCommand constructor",
)

// UpdateProjectStatusCommand represents the owner's request to move a project
// through its lifecycle state machine.
type UpdateProjectStatusCommand struct { //nolint:recvcheck //using for validation
	projectID kernel.UUID
	companyID kernel.UUID
	target    project.Status

	guard guard.ConstructorGuard
}

// NewUpdateProjectStatusCommand creates a command to change a project's status.
func NewUpdateProjectStatusCommand(
	projectID kernel.UUID, companyID kernel.UUID, target project.Status,
) (UpdateProjectStatusCommand, error) {
	cmd := UpdateProjectStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProjectID(projectID),
		cmd.setCompanyID(companyID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateProjectStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProjectStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProjectStatusCommandIsNotConstructed)
}

func (c UpdateProjectStatusCommand) ProjectID() kernel.UUID {
	return c.projectID
}

func (c UpdateProjectStatusCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c UpdateProjectStatusCommand) Target() project.Status {
	return c.target
}

func (c *UpdateProjectStatusCommand) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return err
	}
	c.projectID = projectID
	return nil
}

func (c *UpdateProjectStatusCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}

func (c *UpdateProjectStatusCommand) setTarget(target project.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
