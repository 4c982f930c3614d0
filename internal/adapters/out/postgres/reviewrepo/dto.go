// Package reviewrepo persists review entities, mapping them to and from their
// relational representation. A unique index on (order_id, reviewer_company_id)
// enforces one review per party per order at the storage level.
package reviewrepo

import (
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_reviewer"`
	ReviewerCompanyID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_reviewer"`
	RevieweeCompanyID uuid.UUID `gorm:"type:uuid;index"`
	Rating            int
	Comment           string
	CreatedAt         time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		ReviewerCompanyID: aggregate.ReviewerCompanyID().Bytes(),
		RevieweeCompanyID: aggregate.RevieweeCompanyID().Bytes(),
		Rating:            aggregate.Rating(),
		Comment:           aggregate.Comment(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	reviewerID, err := kernel.UUIDFromBytes(dto.ReviewerCompanyID[:])
	if err != nil {
		return nil, err
	}

	revieweeID, err := kernel.UUIDFromBytes(dto.RevieweeCompanyID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, orderID, reviewerID, revieweeID, dto.Rating, dto.Comment)
}
