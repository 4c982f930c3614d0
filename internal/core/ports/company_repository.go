package ports

import (
	"context"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for company aggregates.
type CompanyRepository interface {
	// Add persists a new company aggregate to storage.
	Add(ctx context.Context, aggregate *company.Company) error

	// Update persists changes to an existing company aggregate.
	Update(ctx context.Context, aggregate *company.Company) error

	// Get retrieves a company aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)

	// GetForUpdate retrieves a company while taking a row-level write lock.
	// Used by the review workflow to serialize average rating recomputation
	// per reviewee.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*company.Company, error)
}
