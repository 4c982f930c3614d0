package queries

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrGetCompanyReviewsQueryIsNotConstructed = errors.New(
	"GetCompanyReviewsQuery must be created via NewGetCompanyReviewsQuery constructor",
)

// GetCompanyReviewsQuery retrieves the review history for one company together
// with its stored average rating.
//
// Example:
//
//	query, err := NewGetCompanyReviewsQuery(companyID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCompanyReviewsQueryHandler(db)
//
//	profile, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve reviews: %w", err)
//	}
type GetCompanyReviewsQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyReviewsQuery creates a query for a company's review profile.
func NewGetCompanyReviewsQuery(companyID kernel.UUID) (GetCompanyReviewsQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyReviewsQuery{}, err
	}

	return GetCompanyReviewsQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyReviewsQueryIsNotConstructed)
}

// CompanyID returns the reviewee company being profiled.
func (q GetCompanyReviewsQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetCompanyReviewsQueryResponse is the review profile read model.
// AverageRating is nil for a company nobody has reviewed yet.
type GetCompanyReviewsQueryResponse struct {
	CompanyID     kernel.UUID
	AverageRating *float64
	Reviews       []CompanyReviewResponse
}

// CompanyReviewResponse represents one review left for the company.
type CompanyReviewResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	ReviewerCompanyID kernel.UUID
	ReviewerName      string
	Rating            int
	Comment           string
}
