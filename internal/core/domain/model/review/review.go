// Package review contains the Review entity: a post-completion rating from one
// order party about the other. Reviewer and reviewee are always derived from
// the order's two parties, never supplied by the caller.
package review

import (
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not created
	// through NewReview or RestoreReview.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")
)

// Review holds an integer rating in [1,5] and an optional comment.
// One review exists per (order, reviewer) pair; the store enforces uniqueness.
type Review struct {
	id                kernel.UUID
	orderID           kernel.UUID
	reviewerCompanyID kernel.UUID
	revieweeCompanyID kernel.UUID
	rating            int
	comment           string

	isConstructed bool
}

// NewReview creates a validated Review.
func NewReview(
	id kernel.UUID,
	orderID kernel.UUID,
	reviewerCompanyID kernel.UUID,
	revieweeCompanyID kernel.UUID,
	rating int,
	comment string,
) (*Review, error) {
	r := &Review{
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setParties(reviewerCompanyID, revieweeCompanyID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(
	id kernel.UUID,
	orderID kernel.UUID,
	reviewerCompanyID kernel.UUID,
	revieweeCompanyID kernel.UUID,
	rating int,
	comment string,
) (*Review, error) {
	return NewReview(id, orderID, reviewerCompanyID, revieweeCompanyID, rating, comment)
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Review) ReviewerCompanyID() kernel.UUID {
	return r.reviewerCompanyID
}

func (r *Review) RevieweeCompanyID() kernel.UUID {
	return r.revieweeCompanyID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setParties(reviewerCompanyID, revieweeCompanyID kernel.UUID) error {
	if err := reviewerCompanyID.Validate(); err != nil {
		return fmt.Errorf("reviewerCompanyID: %w", err)
	}
	if err := revieweeCompanyID.Validate(); err != nil {
		return fmt.Errorf("revieweeCompanyID: %w", err)
	}
	if reviewerCompanyID.IsEqual(revieweeCompanyID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"revieweeCompanyID",
			errors.New("a company cannot review itself"),
		)
	}
	r.reviewerCompanyID = reviewerCompanyID
	r.revieweeCompanyID = revieweeCompanyID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < company.MinRating || rating > company.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, company.MinRating, company.MaxRating)
	}
	r.rating = rating
	return nil
}
