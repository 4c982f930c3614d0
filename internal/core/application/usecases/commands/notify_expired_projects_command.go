package commands

import (
	"errors"

	"buildmarket/internal/pkg/guard"
)

var ErrNotifyExpiredProjectsCommandIsNotConstructed = errors.New(
	"NotifyExpiredProjectsCommand must be created via NewNotifyExpiredProjectsCommand constructor",
)

// NotifyExpiredProjectsCommand triggers the sweep over open projects whose
// deadline has passed. Owners get a mailbox entry once per expired project.
type NotifyExpiredProjectsCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyExpiredProjectsCommand creates a new command to trigger the sweep.
func NewNotifyExpiredProjectsCommand() NotifyExpiredProjectsCommand {
	return NotifyExpiredProjectsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *NotifyExpiredProjectsCommand) Validate() error {
	return c.guard.Validate(
		ErrNotifyExpiredProjectsCommandIsNotConstructed,
	)
}
