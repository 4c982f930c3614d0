package commands_test

import (
	"testing"
	"time"

	"buildmarket/internal/core/application/usecases/commands"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/domain/model/project"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiredOpenProject(t *testing.T, companyID kernel.UUID, title string) *project.Project {
	t.Helper()
	deadline := time.Now().Add(-24 * time.Hour)
	p, err := project.RestoreProject(
		kernel.NewUUID(), companyID,
		title, "", "", nil, nil, "", &deadline,
		project.StatusOpen,
	)
	require.NoError(t, err)
	return p
}

func TestNotifyExpiredProjectsCommandHandler_Handle_NotifiesOwnerOncePerProject(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	noticed := expiredOpenProject(t, contractor.ID(), "Warehouse extension")
	fresh := expiredOpenProject(t, contractor.ID(), "Office refit")

	noticedID := noticed.ID()
	priorEntry, err := notification.NewNotification(
		kernel.NewUUID(), contractor.UserID(),
		notification.TypeProjectUpdated,
		"Project deadline passed", "already delivered", &noticedID,
	)
	require.NoError(t, err)

	projectRepo := new(MockProjectRepository)
	companyRepo := new(MockCompanyRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("ProjectRepository").Return(projectRepo)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	projectRepo.On("GetAllOpenPastDeadline", ctx, mock.Anything).
		Return([]*project.Project{noticed, fresh}, nil).Once()
	companyRepo.On("Get", ctx, contractor.ID()).Return(contractor, nil).Twice()
	notificationRepo.On("GetAllByUser", ctx, contractor.UserID()).
		Return([]*notification.Notification{priorEntry}, nil).Twice()

	var delivered *notification.Notification
	notificationRepo.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			delivered = args.Get(1).(*notification.Notification)
		}).
		Return(nil).Once()

	handler := commands.NewNotifyExpiredProjectsCommandHandler(deadlineSweepUoWFactory{uow: uow})
	cmd := commands.NewNotifyExpiredProjectsCommand()
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, delivered)
	assert.Equal(t, notification.TypeProjectUpdated, delivered.Type())
	assert.Equal(t, contractor.UserID(), delivered.UserID())
	require.NotNil(t, delivered.ReferenceID())
	assert.True(t, delivered.ReferenceID().IsEqual(fresh.ID()))

	projectRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestNotifyExpiredProjectsCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()

	projectRepo := new(MockProjectRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("ProjectRepository").Return(projectRepo)
	uow.On("CompanyRepository").Return(new(MockCompanyRepository))
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Rollback", ctx).Return(nil)

	projectRepo.On("GetAllOpenPastDeadline", ctx, mock.Anything).
		Return([]*project.Project{}, nil).Once()

	handler := commands.NewNotifyExpiredProjectsCommandHandler(deadlineSweepUoWFactory{uow: uow})
	cmd := commands.NewNotifyExpiredProjectsCommand()
	require.NoError(t, handler.Handle(ctx, cmd))

	notificationRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
