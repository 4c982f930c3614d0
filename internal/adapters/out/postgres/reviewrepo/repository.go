package reviewrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/review"
	"buildmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
// Reviews are append-only; there is no Update.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database. The unique index on
// (order_id, reviewer_company_id) backs up the handler-level duplicate check.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"review",
				aggregate.ID().String(),
				fmt.Errorf("company %s already reviewed order %s", aggregate.ReviewerCompanyID(), aggregate.OrderID()),
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a review by ID.
func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndReviewer retrieves a reviewer's review on an order.
func (r *GormReviewRepository) GetByOrderAndReviewer(
	ctx context.Context,
	orderID, reviewerCompanyID kernel.UUID,
) (*review.Review, error) {
	if err := errors.Join(orderID.Validate(), reviewerCompanyID.Validate()); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND reviewer_company_id = ?", orderID.Bytes(), reviewerCompanyID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"review",
				fmt.Sprintf("order %s reviewer %s", orderID, reviewerCompanyID),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByReviewee retrieves all reviews about a company, newest first.
func (r *GormReviewRepository) GetAllByReviewee(
	ctx context.Context,
	revieweeCompanyID kernel.UUID,
) ([]*review.Review, error) {
	if err := revieweeCompanyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "reviewee_company_id = ?", revieweeCompanyID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}

// AverageRatingByReviewee computes the mean rating over all reviews about a
// company inside the current transaction.
func (r *GormReviewRepository) AverageRatingByReviewee(
	ctx context.Context,
	revieweeCompanyID kernel.UUID,
) (float64, bool, error) {
	if err := revieweeCompanyID.Validate(); err != nil {
		return 0, false, err
	}

	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("reviewee_company_id = ?", revieweeCompanyID.Bytes()).
		Select("AVG(rating)").
		Scan(&avg).
		Error
	if err != nil {
		return 0, false, err
	}
	if !avg.Valid {
		return 0, false, nil
	}

	return avg.Float64, true, nil
}
