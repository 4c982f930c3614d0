// Package quote contains the Quote entity: a subcontractor's bid against a
// project. At most one quote exists per (project, company) pair; the uniqueness
// is enforced by the store, the entity only models the bid itself.
package quote

import (
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not created
	// through NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
)

// Quote is a bid by a subcontractor company against a project.
type Quote struct {
	id            kernel.UUID
	projectID     kernel.UUID
	companyID     kernel.UUID
	amount        kernel.Money
	message       string
	estimatedDays *int
	status        Status

	isConstructed bool
}

// NewQuote creates a new Quote in submitted status.
func NewQuote(
	id kernel.UUID,
	projectID kernel.UUID,
	companyID kernel.UUID,
	amount kernel.Money,
	message string,
	estimatedDays *int,
) (*Quote, error) {
	q := &Quote{
		status:        StatusSubmitted,
		message:       message,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setProjectID(projectID),
		q.setCompanyID(companyID),
		q.setAmount(amount),
		q.setEstimatedDays(estimatedDays),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// RestoreQuote reconstructs a Quote from persistence with its stored status.
func RestoreQuote(
	id kernel.UUID,
	projectID kernel.UUID,
	companyID kernel.UUID,
	amount kernel.Money,
	message string,
	estimatedDays *int,
	status Status,
) (*Quote, error) {
	q, err := NewQuote(id, projectID, companyID, amount, message, estimatedDays)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	q.status = status
	return q, nil
}

// Validate ensures the Quote instance was properly constructed.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

func (q *Quote) ID() kernel.UUID {
	return q.id
}

func (q *Quote) ProjectID() kernel.UUID {
	return q.projectID
}

// CompanyID returns the bidding subcontractor company.
func (q *Quote) CompanyID() kernel.UUID {
	return q.companyID
}

func (q *Quote) Amount() kernel.Money {
	return q.amount
}

func (q *Quote) Message() string {
	return q.message
}

func (q *Quote) EstimatedDays() *int {
	return q.estimatedDays
}

func (q *Quote) Status() Status {
	return q.status
}

// Accept marks the quote accepted. Only a submitted quote can be accepted;
// the caller re-validates this under the row lock before calling.
func (q *Quote) Accept() error {
	newStatus, err := q.status.Accept()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// Reject marks the quote rejected. Only a submitted quote can be rejected.
func (q *Quote) Reject() error {
	newStatus, err := q.status.Reject()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// Withdraw marks the quote withdrawn by its submitter.
func (q *Quote) Withdraw() error {
	newStatus, err := q.status.Withdraw()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return fmt.Errorf("projectID: %w", err)
	}
	q.projectID = projectID
	return nil
}

func (q *Quote) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return fmt.Errorf("companyID: %w", err)
	}
	q.companyID = companyID
	return nil
}

func (q *Quote) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}
	q.amount = amount
	return nil
}

func (q *Quote) setEstimatedDays(estimatedDays *int) error {
	if estimatedDays != nil && *estimatedDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDays",
			fmt.Errorf("%d is not greater than 0", *estimatedDays),
		)
	}
	q.estimatedDays = estimatedDays
	return nil
}
