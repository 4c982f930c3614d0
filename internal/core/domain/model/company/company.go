package company

import (
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
)

var (
	// ErrCompanyIsNotConstructed is returned when a Company instance was not created
	// through NewCompany or RestoreCompany.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")
)

// Company represents a market participant. Its role is fixed at registration:
// contractors post projects and issue direct orders, subcontractors bid on
// projects and receive direct orders.
//
// AverageRating is a derived aggregate over all reviews where the company is
// reviewee. It is recomputed by the review workflow and never set directly by
// any other code path; nil means the company has no reviews yet.
type Company struct {
	id            kernel.UUID
	userID        kernel.UUID
	name          string
	role          Role
	averageRating *float64

	isConstructed bool
}

// NewCompany creates a validated Company with no rating.
// userID identifies the account that owns the company's notification mailbox.
func NewCompany(id kernel.UUID, userID kernel.UUID, name string, role Role) (*Company, error) {
	c := &Company{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
		c.setRole(role),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompany reconstructs a Company from persistence.
func RestoreCompany(
	id kernel.UUID, userID kernel.UUID, name string, role Role, averageRating *float64,
) (*Company, error) {
	c, err := NewCompany(id, userID, name, role)
	if err != nil {
		return nil, err
	}
	if averageRating != nil {
		if err = c.UpdateAverageRating(*averageRating); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Validate ensures the Company instance was properly constructed.
func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

func (c *Company) IsEqual(other *Company) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Company) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning account's identifier, the target of mailbox notifications.
func (c *Company) UserID() kernel.UUID {
	return c.userID
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) Role() Role {
	return c.role
}

// AverageRating returns the derived mean rating, or nil if no reviews exist.
func (c *Company) AverageRating() *float64 {
	return c.averageRating
}

// UpdateAverageRating replaces the derived rating with a freshly computed mean.
// Only the review workflow calls this, inside the same transaction that
// persisted the triggering review.
func (c *Company) UpdateAverageRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("averageRating", rating, MinRating, MaxRating)
	}
	c.averageRating = &rating
	return nil
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("userID: %w", err)
	}
	c.userID = userID
	return nil
}

func (c *Company) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Company) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

// Rating bounds shared by reviews and the derived average.
const (
	MinRating = 1
	MaxRating = 5
)
