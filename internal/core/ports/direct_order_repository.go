package ports

import (
	"context"

	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/kernel"
)

// DirectOrderRepository defines the persistence contract for direct order aggregates.
type DirectOrderRepository interface {
	// Add persists a new direct order aggregate to storage.
	Add(ctx context.Context, aggregate *directorder.DirectOrder) error

	// Update persists changes to an existing direct order aggregate.
	Update(ctx context.Context, aggregate *directorder.DirectOrder) error

	// Get retrieves a direct order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*directorder.DirectOrder, error)

	// GetForUpdate retrieves a direct order while taking a row-level write
	// lock. Every lifecycle move re-checks the status under this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*directorder.DirectOrder, error)
}
