package queries

import (
	"context"
	"database/sql"
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyReviewsQueryHandler retrieves a company's review profile from the
// database. The stored average is read as-is; recomputation happens only on
// the write side when a review is created.
type GetCompanyReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyReviewsQueryHandler creates a handler for review profile queries.
// Requires a GORM database connection for query execution.
func NewGetCompanyReviewsQueryHandler(db *gorm.DB) GetCompanyReviewsQueryHandler {
	return GetCompanyReviewsQueryHandler{db: db}
}

// Handle executes the query to retrieve the company's reviews and average rating.
// Returns ObjectNotFoundError when the company does not exist.
func (h GetCompanyReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyReviewsQuery,
) (GetCompanyReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanyReviewsQueryResponse{}, err
	}

	response := GetCompanyReviewsQueryResponse{
		CompanyID: query.CompanyID(),
		Reviews:   make([]CompanyReviewResponse, 0),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT average_rating
		FROM companies
		WHERE id = ?
	`, query.CompanyID().Bytes()).Row()
	if err := row.Scan(&response.AverageRating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCompanyReviewsQueryResponse{},
				errs.NewObjectNotFoundError("company", query.CompanyID().String())
		}
		return GetCompanyReviewsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.reviewer_company_id,
			c.name,
			r.rating,
			r.comment
		FROM reviews r
		JOIN companies c ON c.id = r.reviewer_company_id
		WHERE r.reviewee_company_id = ?
		ORDER BY r.created_at DESC
	`, query.CompanyID().Bytes()).Rows()
	if err != nil {
		return GetCompanyReviewsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry CompanyReviewResponse
		var id, orderID, reviewerID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&reviewerID,
			&entry.ReviewerName,
			&entry.Rating,
			&entry.Comment,
		)
		if err != nil {
			return GetCompanyReviewsQueryResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetCompanyReviewsQueryResponse{}, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return GetCompanyReviewsQueryResponse{}, err
		}
		if entry.ReviewerCompanyID, err = kernel.UUIDFromBytes(reviewerID[:]); err != nil {
			return GetCompanyReviewsQueryResponse{}, err
		}

		response.Reviews = append(response.Reviews, entry)
	}

	if err = rows.Err(); err != nil {
		return GetCompanyReviewsQueryResponse{}, err
	}

	return response, nil
}
