// Package order contains the Order aggregate: a confirmed engagement created
// exactly once from an accepted quote. The order copies the quote's amount at
// acceptance time, so later mutation of quote or project never affects it.
package order

import (
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order references the two parties, the originating quote and project, and the
// amount frozen from the quote at acceptance.
type Order struct {
	id                      kernel.UUID
	projectID               kernel.UUID
	quoteID                 kernel.UUID
	contractorCompanyID     kernel.UUID
	subcontractorCompanyID  kernel.UUID
	amount                  kernel.Money
	status                  Status

	isConstructed bool
}

// NewOrder creates a new Order in confirmed status.
func NewOrder(
	id kernel.UUID,
	projectID kernel.UUID,
	quoteID kernel.UUID,
	contractorCompanyID kernel.UUID,
	subcontractorCompanyID kernel.UUID,
	amount kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        StatusConfirmed,
		amount:        amount,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProjectID(projectID),
		o.setQuoteID(quoteID),
		o.setParties(contractorCompanyID, subcontractorCompanyID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status.
func RestoreOrder(
	id kernel.UUID,
	projectID kernel.UUID,
	quoteID kernel.UUID,
	contractorCompanyID kernel.UUID,
	subcontractorCompanyID kernel.UUID,
	amount kernel.Money,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, projectID, quoteID, contractorCompanyID, subcontractorCompanyID, amount)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ProjectID() kernel.UUID {
	return o.projectID
}

// QuoteID returns the originating quote; each quote spawns at most one order.
func (o *Order) QuoteID() kernel.UUID {
	return o.quoteID
}

func (o *Order) ContractorCompanyID() kernel.UUID {
	return o.contractorCompanyID
}

func (o *Order) SubcontractorCompanyID() kernel.UUID {
	return o.subcontractorCompanyID
}

func (o *Order) Amount() kernel.Money {
	return o.amount
}

func (o *Order) Status() Status {
	return o.status
}

// IsParty reports whether companyID is one of the order's two parties.
func (o *Order) IsParty(companyID kernel.UUID) bool {
	return o.contractorCompanyID.IsEqual(companyID) || o.subcontractorCompanyID.IsEqual(companyID)
}

// Counterparty returns the other party of companyID on this order.
// Returns an error if companyID is not a party at all.
func (o *Order) Counterparty(companyID kernel.UUID) (kernel.UUID, error) {
	switch {
	case o.contractorCompanyID.IsEqual(companyID):
		return o.subcontractorCompanyID, nil
	case o.subcontractorCompanyID.IsEqual(companyID):
		return o.contractorCompanyID, nil
	default:
		return kernel.UUID{}, fmt.Errorf("company %s is not a party on order %s", companyID, o.id)
	}
}

// Complete marks the order completed. Only a confirmed order can complete.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return fmt.Errorf("projectID: %w", err)
	}
	o.projectID = projectID
	return nil
}

func (o *Order) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return fmt.Errorf("quoteID: %w", err)
	}
	o.quoteID = quoteID
	return nil
}

func (o *Order) setParties(contractorCompanyID, subcontractorCompanyID kernel.UUID) error {
	if err := contractorCompanyID.Validate(); err != nil {
		return fmt.Errorf("contractorCompanyID: %w", err)
	}
	if err := subcontractorCompanyID.Validate(); err != nil {
		return fmt.Errorf("subcontractorCompanyID: %w", err)
	}
	o.contractorCompanyID = contractorCompanyID
	o.subcontractorCompanyID = subcontractorCompanyID
	return nil
}
