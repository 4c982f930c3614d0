package ports

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review entities.
// Reviews are append-only; there is no Update.
type ReviewRepository interface {
	// Add persists a new review to storage.
	// Fails if the (order, reviewer) pair already has a review.
	Add(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetByOrderAndReviewer retrieves a reviewer's review on an order.
	// Used to enforce one review per party per order.
	GetByOrderAndReviewer(ctx context.Context, orderID, reviewerCompanyID kernel.UUID) (*review.Review, error)

	// GetAllByReviewee retrieves all reviews about a company, newest first.
	GetAllByReviewee(ctx context.Context, revieweeCompanyID kernel.UUID) ([]*review.Review, error)

	// AverageRatingByReviewee computes the mean rating over all reviews about
	// a company inside the current transaction. Returns found=false when the
	// company has no reviews.
	AverageRatingByReviewee(ctx context.Context, revieweeCompanyID kernel.UUID) (avg float64, found bool, err error)
}
