// Package directorder contains the DirectOrder aggregate: an engagement a
// contractor creates against a chosen subcontractor without a bidding round.
package directorder

import (
	"errors"
	"fmt"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
)

var (
	// ErrDirectOrderIsNotConstructed is returned when a DirectOrder instance was
	// not created through NewDirectOrder or RestoreDirectOrder.
	ErrDirectOrderIsNotConstructed = errors.New("DirectOrder must be created via NewDirectOrder constructor")
)

// DirectOrder carries the engagement details and the two parties.
// A decline reason may only be attached while the order is still pending.
type DirectOrder struct {
	id                     kernel.UUID
	contractorCompanyID    kernel.UUID
	subcontractorCompanyID kernel.UUID
	title                  string
	description            string
	location               string
	amount                 kernel.Money
	deadline               *time.Time
	specialty              string
	status                 Status
	declineReason          string

	isConstructed bool
}

// NewDirectOrder creates a new DirectOrder in pending status.
// The two parties must differ; self-dealing is rejected.
func NewDirectOrder(
	id kernel.UUID,
	contractorCompanyID kernel.UUID,
	subcontractorCompanyID kernel.UUID,
	title string,
	description string,
	location string,
	amount kernel.Money,
	deadline *time.Time,
	specialty string,
) (*DirectOrder, error) {
	d := &DirectOrder{
		status:        StatusPending,
		description:   description,
		location:      location,
		deadline:      deadline,
		specialty:     specialty,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setParties(contractorCompanyID, subcontractorCompanyID),
		d.setTitle(title),
		d.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDirectOrder reconstructs a DirectOrder from persistence.
func RestoreDirectOrder(
	id kernel.UUID,
	contractorCompanyID kernel.UUID,
	subcontractorCompanyID kernel.UUID,
	title string,
	description string,
	location string,
	amount kernel.Money,
	deadline *time.Time,
	specialty string,
	status Status,
	declineReason string,
) (*DirectOrder, error) {
	d, err := NewDirectOrder(
		id, contractorCompanyID, subcontractorCompanyID,
		title, description, location, amount, deadline, specialty,
	)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status
	d.declineReason = declineReason
	return d, nil
}

// Validate ensures the DirectOrder instance was properly constructed.
func (d *DirectOrder) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDirectOrderIsNotConstructed
	}
	return nil
}

func (d *DirectOrder) IsEqual(other *DirectOrder) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *DirectOrder) ID() kernel.UUID {
	return d.id
}

func (d *DirectOrder) ContractorCompanyID() kernel.UUID {
	return d.contractorCompanyID
}

func (d *DirectOrder) SubcontractorCompanyID() kernel.UUID {
	return d.subcontractorCompanyID
}

func (d *DirectOrder) Title() string {
	return d.title
}

func (d *DirectOrder) Description() string {
	return d.description
}

func (d *DirectOrder) Location() string {
	return d.location
}

func (d *DirectOrder) Amount() kernel.Money {
	return d.amount
}

func (d *DirectOrder) Deadline() *time.Time {
	return d.deadline
}

func (d *DirectOrder) Specialty() string {
	return d.specialty
}

func (d *DirectOrder) Status() Status {
	return d.status
}

// DeclineReason returns the free-text reason attached at decline time, empty if none.
func (d *DirectOrder) DeclineReason() string {
	return d.declineReason
}

// IsContractor reports whether companyID is the issuing contractor party.
func (d *DirectOrder) IsContractor(companyID kernel.UUID) bool {
	return d.contractorCompanyID.IsEqual(companyID)
}

// IsSubcontractor reports whether companyID is the receiving subcontractor party.
func (d *DirectOrder) IsSubcontractor(companyID kernel.UUID) bool {
	return d.subcontractorCompanyID.IsEqual(companyID)
}

// IsParty reports whether companyID is one of the two parties.
func (d *DirectOrder) IsParty(companyID kernel.UUID) bool {
	return d.IsContractor(companyID) || d.IsSubcontractor(companyID)
}

// Accept marks the order accepted by the subcontractor.
func (d *DirectOrder) Accept() error {
	return d.transition(StatusAccepted)
}

// Decline marks the order declined, persisting reason before the status flip.
// A reason may only be attached while the order is still pending.
func (d *DirectOrder) Decline(reason string) error {
	if d.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to decline", d.status),
		)
	}
	d.declineReason = reason
	return d.transition(StatusDeclined)
}

// Start marks the order in progress.
func (d *DirectOrder) Start() error {
	return d.transition(StatusInProgress)
}

// Complete marks the order completed.
func (d *DirectOrder) Complete() error {
	return d.transition(StatusCompleted)
}

// Cancel marks the order cancelled. Allowed only from pending or accepted,
// which the transition table already encodes.
func (d *DirectOrder) Cancel() error {
	return d.transition(StatusCancelled)
}

func (d *DirectOrder) transition(target Status) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

func (d *DirectOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DirectOrder) setParties(contractorCompanyID, subcontractorCompanyID kernel.UUID) error {
	if err := contractorCompanyID.Validate(); err != nil {
		return fmt.Errorf("contractorCompanyID: %w", err)
	}
	if err := subcontractorCompanyID.Validate(); err != nil {
		return fmt.Errorf("subcontractorCompanyID: %w", err)
	}
	if contractorCompanyID.IsEqual(subcontractorCompanyID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subcontractorCompanyID",
			errors.New("a company cannot issue a direct order to itself"),
		)
	}
	d.contractorCompanyID = contractorCompanyID
	d.subcontractorCompanyID = subcontractorCompanyID
	return nil
}

func (d *DirectOrder) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	d.title = title
	return nil
}

func (d *DirectOrder) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}
	d.amount = amount
	return nil
}
