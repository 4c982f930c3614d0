package commands

import (
	"errors"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrCreateProjectCommandIsNotConstructed = errors.New(
	"CreateProjectCommand must be created via NewCreateProjectCommand constructor",
)

// CreateProjectCommand represents a contractor's request to post a new project.
// The project starts in draft; opening it for bidding is a separate status move.
type CreateProjectCommand struct { //nolint:recvcheck //using for validation
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

// NewCreateProjectCommand creates a command to post a new project.
// Domain rules (title, budget range, deadline) are checked by the aggregate
// constructor inside the handler; the command only validates identities.
func NewCreateProjectCommand(
	projectID kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	location string,
	budgetMin *kernel.Money,
	budgetMax *kernel.Money,
	specialty string,
	deadline *time.Time,
) (CreateProjectCommand, error) {
	cmd := CreateProjectCommand{
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
		return CreateProjectCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProjectCommand) Validate() error {
	return c.guard.Validate(ErrCreateProjectCommandIsNotConstructed)
}

func (c CreateProjectCommand) ProjectID() kernel.UUID {
	return c.projectID
}

func (c CreateProjectCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c CreateProjectCommand) Title() string {
	return c.title
}

func (c CreateProjectCommand) Description() string {
	return c.description
}

func (c CreateProjectCommand) Location() string {
	return c.location
}

func (c CreateProjectCommand) BudgetMin() *kernel.Money {
	return c.budgetMin
}

func (c CreateProjectCommand) BudgetMax() *kernel.Money {
	return c.budgetMax
}

func (c CreateProjectCommand) Specialty() string {
	return c.specialty
}

func (c CreateProjectCommand) Deadline() *time.Time {
	return c.deadline
}

func (c *CreateProjectCommand) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return err
	}
	c.projectID = projectID
	return nil
}

func (c *CreateProjectCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	c.companyID = companyID
	return nil
}
