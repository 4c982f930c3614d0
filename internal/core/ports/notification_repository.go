package ports

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for mailbox entries.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllByUser retrieves a user's mailbox, newest first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// MarkAllReadByUser flips every unread entry in a user's mailbox and
	// returns how many were flipped.
	MarkAllReadByUser(ctx context.Context, userID kernel.UUID) (int64, error)
}
