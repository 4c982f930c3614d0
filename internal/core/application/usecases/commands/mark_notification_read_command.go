package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a user flipping one mailbox entry to read.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
func NewMarkNotificationReadCommand(notificationID, userID kernel.UUID) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNotificationID(notificationID),
		cmd.setUserID(userID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c MarkNotificationReadCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}
	c.notificationID = notificationID
	return nil
}

func (c *MarkNotificationReadCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
