package commands

import (
	"context"
	"fmt"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
)

// NotifyExpiredProjectsCommandHandler sweeps open projects whose bidding
// deadline has passed and drops a mailbox entry for each owner. Entries are
// deduplicated against the owner's mailbox so a daily run does not repeat
// itself for the same project.
type NotifyExpiredProjectsCommandHandler struct {
	uowFactory DeadlineSweepUoWFactory
}

// NewNotifyExpiredProjectsCommandHandler creates a handler for the deadline sweep.
func NewNotifyExpiredProjectsCommandHandler(
	uowFactory DeadlineSweepUoWFactory,
) NotifyExpiredProjectsCommandHandler {
	return NotifyExpiredProjectsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle notifies owners of open projects past their deadline.
func (h NotifyExpiredProjectsCommandHandler) Handle(
	ctx context.Context,
	cmd NotifyExpiredProjectsCommand,
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

	projectRepo := uow.ProjectRepository()
	companyRepo := uow.CompanyRepository()
	notificationRepo := uow.NotificationRepository()

	expired, err := projectRepo.GetAllOpenPastDeadline(ctx, time.Now())
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	for _, expiredProject := range expired {
		owner, err := companyRepo.Get(ctx, expiredProject.CompanyID())
		if err != nil {
			return err
		}

		mailbox, err := notificationRepo.GetAllByUser(ctx, owner.UserID())
		if err != nil {
			return err
		}
		if alreadyNotified(mailbox, expiredProject.ID()) {
			continue
		}

		if err = notify(
			ctx,
			notificationRepo,
			owner.UserID(),
			notification.TypeProjectUpdated,
			"Project deadline passed",
			fmt.Sprintf("The bidding deadline for %q has passed", expiredProject.Title()),
			expiredProject.ID(),
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func alreadyNotified(mailbox []*notification.Notification, projectID kernel.UUID) bool {
	for _, entry := range mailbox {
		if entry.Type() != notification.TypeProjectUpdated {
			continue
		}
		if ref := entry.ReferenceID(); ref != nil && ref.IsEqual(projectID) {
			return true
		}
	}
	return false
}
