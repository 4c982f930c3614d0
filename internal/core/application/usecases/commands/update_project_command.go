package commands

import (
	"errors"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrUpdateProjectCommandIsNotConstructed = errors.New(
	"UpdateProjectCommand must be created via NewUpdateProjectCommand constructor",
)

// UpdateProjectCommand represents the owner's request to replace a project's
// descriptive fields. Status is untouched; lifecycle moves go through
// UpdateProjectStatusCommand.
type UpdateProjectCommand struct { //nolint:recvcheck //using for validation
	projectID   kernel.UUID
	companyID   kernel.UUID
	title       string
	description string
	location    string
	budgetMin   *kernel.Money
	budgetMax   *kernel.Money
	specialty   string
	deadline    *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateProjectCommand creates a command to update a project's details.
func NewUpdateProjectCommand(
	projectID kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	location string,
	budgetMin *kernel.Money,
	budgetMax *kernel.Money,
	specialty string,
	deadline *time.Time,
) (UpdateProjectCommand, error) {
	cmd := UpdateProjectCommand{
		title:       title,
		description: description,
		location:    location,
		budgetMin:   budgetMin,
		budgetMax:   budgetMax,
		specialty:   specialty,
		deadline:    deadline,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProjectID(projectID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return UpdateProjectCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProjectCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProjectCommandIsNotConstructed)
}

func (c UpdateProjectCommand) ProjectID() kernel.UUID {
	return c.projectID
}

func (c UpdateProjectCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c UpdateProjectCommand) Title() string {
	return c.title
}

func (c UpdateProjectCommand) Description() string {
	return c.description
}

func (c UpdateProjectCommand) Location() string {
	return c.location
}

func (c UpdateProjectCommand) BudgetMin() *kernel.Money {
	return c.budgetMin
}

func (c UpdateProjectCommand) BudgetMax() *kernel.Money {
	return c.budgetMax
}

func (c UpdateProjectCommand) Specialty() string {
	return c.specialty
}

func (c UpdateProjectCommand) Deadline() *time.Time {
	return c.deadline
}

func (c *UpdateProjectCommand) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return err
	}
	c.projectID = projectID
	return nil
}

func (c *UpdateProjectCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
