package project

import (
	"errors"
	"fmt"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
)

var (
	// ErrProjectIsNotConstructed is returned when a Project instance was not created
	// through NewProject or RestoreProject.
	ErrProjectIsNotConstructed = errors.New("Project must be created via NewProject constructor")
)

// Project is a posted piece of work open for bidding. It is owned by exactly
// one contractor company and mutated only through its owner.
//
// Project follows these invariants:
//   - Must have a valid unique identifier and owning company
//   - Title must be non-empty
//   - Budget range, when both bounds are set, must satisfy min <= max
//   - A set deadline must not be in the past at creation time
//   - Status transitions follow the table in status.go
type Project struct {
	id          kernel.UUID
	companyID   kernel.UUID
	title       string
	description string
	location    string
	budgetMin   *kernel.Money
	budgetMax   *kernel.Money
	specialty   string
	deadline    *time.Time
	status      Status

	isConstructed bool
}

// NewProject creates a new Project in draft status.
func NewProject(
	id kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	location string,
	budgetMin *kernel.Money,
	budgetMax *kernel.Money,
	specialty string,
	deadline *time.Time,
) (*Project, error) {
	p := &Project{
		status:        StatusDraft,
		description:   description,
		location:      location,
		specialty:     specialty,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCompanyID(companyID),
		p.setTitle(title),
		p.setBudget(budgetMin, budgetMax),
		p.setDeadline(deadline),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProject reconstructs a Project from persistence with its stored status.
// Unlike NewProject it does not re-check the deadline against the clock:
// a stored project may legitimately have a deadline in the past.
func RestoreProject(
	id kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	location string,
	budgetMin *kernel.Money,
	budgetMax *kernel.Money,
	specialty string,
	deadline *time.Time,
	status Status,
) (*Project, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Project{
		status:        status,
		description:   description,
		location:      location,
		specialty:     specialty,
		deadline:      deadline,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCompanyID(companyID),
		p.setTitle(title),
		p.setBudget(budgetMin, budgetMax),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Project instance was properly constructed.
func (p *Project) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProjectIsNotConstructed
	}
	return nil
}

func (p *Project) IsEqual(other *Project) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Project) ID() kernel.UUID {
	return p.id
}

// CompanyID returns the owning contractor company.
func (p *Project) CompanyID() kernel.UUID {
	return p.companyID
}

func (p *Project) Title() string {
	return p.title
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) Location() string {
	return p.location
}

func (p *Project) BudgetMin() *kernel.Money {
	return p.budgetMin
}

func (p *Project) BudgetMax() *kernel.Money {
	return p.budgetMax
}

// Specialty returns the required trade category, empty if none.
func (p *Project) Specialty() string {
	return p.specialty
}

func (p *Project) Deadline() *time.Time {
	return p.deadline
}

func (p *Project) Status() Status {
	return p.status
}

// IsOwnedBy reports whether companyID owns the project.
func (p *Project) IsOwnedBy(companyID kernel.UUID) bool {
	return p.companyID.IsEqual(companyID)
}

// ChangeStatus moves the project through the request-driven state machine.
// The caller must have verified ownership; the machine only validates the move.
func (p *Project) ChangeStatus(target Status) error {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Close ends bidding after a quote was accepted. Only an open project can close.
func (p *Project) Close() error {
	return p.ChangeStatus(StatusClosed)
}

// CompleteFromOrder marks the project completed as a cascade of its order
// completing. The cascade skips the request transition table: the project sits
// in closed (or later) when its order completes, and the original system sets
// it straight to completed.
func (p *Project) CompleteFromOrder() {
	p.status = StatusCompleted
}

// UpdateDetails replaces the mutable descriptive fields.
// Status is untouched; use ChangeStatus for lifecycle moves.
func (p *Project) UpdateDetails(
	title string,
	description string,
	location string,
	budgetMin *kernel.Money,
	budgetMax *kernel.Money,
	specialty string,
	deadline *time.Time,
) error {
	if err := errors.Join(
		p.setTitle(title),
		p.setBudget(budgetMin, budgetMax),
	); err != nil {
		return err
	}
	p.description = description
	p.location = location
	p.specialty = specialty
	p.deadline = deadline
	return nil
}

func (p *Project) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Project) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return fmt.Errorf("companyID: %w", err)
	}
	p.companyID = companyID
	return nil
}

func (p *Project) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Project) setBudget(budgetMin, budgetMax *kernel.Money) error {
	if budgetMin != nil && budgetMax != nil && budgetMin.Amount() > budgetMax.Amount() {
		return errs.NewValueIsInvalidErrorWithCause(
			"budget",
			fmt.Errorf("budget min %s exceeds max %s", budgetMin, budgetMax),
		)
	}
	p.budgetMin = budgetMin
	p.budgetMax = budgetMax
	return nil
}

func (p *Project) setDeadline(deadline *time.Time) error {
	if deadline != nil && deadline.Before(time.Now().Truncate(24*time.Hour)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deadline",
			fmt.Errorf("deadline %s is in the past", deadline.Format(time.DateOnly)),
		)
	}
	p.deadline = deadline
	return nil
}
