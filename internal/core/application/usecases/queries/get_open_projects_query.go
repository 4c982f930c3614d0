// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
	"buildmarket/internal/pkg/guard"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

var ErrGetOpenProjectsQueryIsNotConstructed = errors.New(
	"GetOpenProjectsQuery must be created via NewGetOpenProjectsQuery constructor",
)

// GetOpenProjectsQuery retrieves projects that are currently accepting quotes.
// Returns project summaries together with the number of submitted quotes on
// each, so subcontractors can gauge the competition before bidding.
//
// Example:
//
//	query, err := NewGetOpenProjectsQuery(20, 0)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOpenProjectsQueryHandler(db)
//
//	projects, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve open projects: %w", err)
//	}
type GetOpenProjectsQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetOpenProjectsQuery creates a query for the open project listing.
// A non-positive limit falls back to the default page size.
func NewGetOpenProjectsQuery(limit, offset int) (GetOpenProjectsQuery, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		return GetOpenProjectsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}
	if offset < 0 {
		return GetOpenProjectsQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetOpenProjectsQuery{
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenProjectsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenProjectsQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetOpenProjectsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetOpenProjectsQuery) Offset() int {
	return q.offset
}

// GetOpenProjectsQueryResponse represents one open project in the read model.
type GetOpenProjectsQueryResponse struct {
	ID        kernel.UUID
	CompanyID kernel.UUID
	Title     string
	Location  string
	Specialty string
	BudgetMin *int64
	BudgetMax *int64
	Deadline  *time.Time
	// QuoteCount counts quotes still in submitted status.
	QuoteCount int64
}
