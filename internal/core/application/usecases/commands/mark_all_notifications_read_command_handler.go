package commands

import (
	"context"
)

// MarkAllNotificationsReadCommandHandler handles flipping a whole mailbox to read.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for the bulk read flip.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk read flip. An empty mailbox is not an error.
func (h *MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context, cmd MarkAllNotificationsReadCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.NotificationRepository().MarkAllReadByUser(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
