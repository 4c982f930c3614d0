package commands

import (
	"context"
	"errors"

	"buildmarket/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler handles flipping one mailbox entry to read.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for the read flip.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read flip. Flipping an already-read entry succeeds.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	notificationRepo := uow.NotificationRepository()
	existing, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if !existing.UserID().IsEqual(cmd.UserID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"userID",
			errors.New("the notification belongs to another mailbox"),
		)
	}

	existing.MarkRead()
	if err = notificationRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
