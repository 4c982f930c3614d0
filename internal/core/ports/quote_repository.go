package ports

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote entities.
type QuoteRepository interface {
	// Add persists a new quote to storage.
	// Fails if the (project, company) pair already has a quote.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetForUpdate retrieves a quote while taking a row-level write lock.
	// Acceptance and rejection re-check the submitted status under this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetByProjectAndCompany retrieves a company's quote on a project,
	// regardless of status. Used to enforce one quote per pair.
	GetByProjectAndCompany(ctx context.Context, projectID, companyID kernel.UUID) (*quote.Quote, error)

	// GetAllSubmittedByProjectForUpdate retrieves every still-submitted quote
	// on a project with row-level write locks. The acceptance cascade rejects
	// these siblings in bulk.
	GetAllSubmittedByProjectForUpdate(ctx context.Context, projectID kernel.UUID) ([]*quote.Quote, error)

	// GetAllByProject retrieves all quotes on a project, newest first.
	GetAllByProject(ctx context.Context, projectID kernel.UUID) ([]*quote.Quote, error)
}
