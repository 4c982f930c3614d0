package ports

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails if the originating quote already spawned an order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while taking a row-level write lock.
	// Completion and review creation re-check the status under this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
