package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
	"buildmarket/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents one order party rating the other after
// completion. The reviewee is derived from the order, never supplied.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID          kernel.UUID
	orderID           kernel.UUID
	reviewerCompanyID kernel.UUID
	rating            int
	comment           string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review an order counterparty.
func NewCreateReviewCommand(
	reviewID kernel.UUID,
	orderID kernel.UUID,
	reviewerCompanyID kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setOrderID(orderID),
		cmd.setReviewerCompanyID(reviewerCompanyID),
		cmd.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c CreateReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateReviewCommand) ReviewerCompanyID() kernel.UUID {
	return c.reviewerCompanyID
}

func (c CreateReviewCommand) Rating() int {
	return c.rating
}

func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateReviewCommand) setReviewerCompanyID(reviewerCompanyID kernel.UUID) error {
	if err := reviewerCompanyID.Validate(); err != nil {
		return err
	}
	c.reviewerCompanyID = reviewerCompanyID
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if rating < company.MinRating || rating > company.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, company.MinRating, company.MaxRating)
	}
	c.rating = rating
	return nil
}
