package commands

import (
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a user flipping its whole mailbox to read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark a mailbox read.
func NewMarkAllNotificationsReadCommand(userID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	cmd := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

func (c MarkAllNotificationsReadCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MarkAllNotificationsReadCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
