package commands

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/ports"
)

// notify creates a mailbox entry inside the caller's transaction. The entry
// shares the workflow's fate: either both persist or both are absent.
func notify(
	ctx context.Context,
	repo ports.NotificationRepository,
	userID kernel.UUID,
	kind notification.Type,
	title string,
	message string,
	referenceID kernel.UUID,
) error {
	entry, err := notification.NewNotification(
		kernel.NewUUID(), userID, kind, title, message, &referenceID,
	)
	if err != nil {
		return err
	}
	return repo.Add(ctx, entry)
}
