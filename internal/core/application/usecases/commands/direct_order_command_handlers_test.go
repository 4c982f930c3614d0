package commands_test

import (
	"testing"

	"buildmarket/internal/core/application/usecases/commands"
	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingDirectOrder(t *testing.T, contractorID, subcontractorID kernel.UUID) *directorder.DirectOrder {
	t.Helper()
	d, err := directorder.NewDirectOrder(
		kernel.NewUUID(), contractorID, subcontractorID,
		"Electrical rough-in", "", "", mustMoney(t, 500_000), nil, "electrical",
	)
	require.NoError(t, err)
	return d
}

func TestCreateDirectOrderCommandHandler_Handle_NotifiesTarget(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	subcontractor := subcontractorCompany(t)

	companyRepo := new(MockCompanyRepository)
	directOrderRepo := new(MockDirectOrderRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("DirectOrderRepository").Return(directOrderRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	companyRepo.On("Get", ctx, contractor.ID()).Return(contractor, nil).Once()
	companyRepo.On("Get", ctx, subcontractor.ID()).Return(subcontractor, nil).Once()
	directOrderRepo.On("Add", ctx, mock.AnythingOfType("*directorder.DirectOrder")).Return(nil).Once()

	var sent *notification.Notification
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*notification.Notification)
		}).
		Return(nil).Once()

	cmd, err := commands.NewCreateDirectOrderCommand(
		kernel.NewUUID(), contractor.ID(), subcontractor.ID(),
		"Electrical rough-in", "", "", mustMoney(t, 500_000), nil, "electrical",
	)
	require.NoError(t, err)

	handler := commands.NewCreateDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, sent)
	assert.Equal(t, notification.TypeDirectOrderReceived, sent.Type())
	assert.True(t, sent.UserID().IsEqual(subcontractor.UserID()))
}

func TestCreateDirectOrderCommandHandler_Handle_SubcontractorCallerForbidden(t *testing.T) {
	ctx := t.Context()

	caller := subcontractorCompany(t)

	companyRepo := new(MockCompanyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("Rollback", ctx).Return(nil)

	companyRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	cmd, err := commands.NewCreateDirectOrderCommand(
		kernel.NewUUID(), caller.ID(), kernel.NewUUID(),
		"Electrical rough-in", "", "", mustMoney(t, 100), nil, "",
	)
	require.NoError(t, err)

	handler := commands.NewCreateDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationIsForbidden)
}

func TestDeclineDirectOrderCommandHandler_Handle_StoresReasonAndNotifies(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	subcontractor := subcontractorCompany(t)
	testDirectOrder := pendingDirectOrder(t, contractor.ID(), subcontractor.ID())

	directOrderRepo := new(MockDirectOrderRepository)
	companyRepo := new(MockCompanyRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("DirectOrderRepository").Return(directOrderRepo)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	directOrderRepo.On("GetForUpdate", ctx, testDirectOrder.ID()).Return(testDirectOrder, nil).Once()
	directOrderRepo.On("Update", ctx, testDirectOrder).Return(nil).Once()
	companyRepo.On("Get", ctx, contractor.ID()).Return(contractor, nil).Once()

	var sent *notification.Notification
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*notification.Notification)
		}).
		Return(nil).Once()

	cmd, err := commands.NewDeclineDirectOrderCommand(
		testDirectOrder.ID(), subcontractor.ID(), "scheduling conflict",
	)
	require.NoError(t, err)

	handler := commands.NewDeclineDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, directorder.StatusDeclined, testDirectOrder.Status())
	assert.Equal(t, "scheduling conflict", testDirectOrder.DeclineReason())

	require.NotNil(t, sent)
	assert.Equal(t, notification.TypeDirectOrderDeclined, sent.Type())
	assert.True(t, sent.UserID().IsEqual(contractor.UserID()))
}

func TestDeclineDirectOrderCommandHandler_Handle_ContractorForbidden(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	testDirectOrder := pendingDirectOrder(t, contractor.ID(), kernel.NewUUID())

	directOrderRepo := new(MockDirectOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("DirectOrderRepository").Return(directOrderRepo)
	uow.On("Rollback", ctx).Return(nil)

	directOrderRepo.On("GetForUpdate", ctx, testDirectOrder.ID()).Return(testDirectOrder, nil).Once()

	cmd, err := commands.NewDeclineDirectOrderCommand(testDirectOrder.ID(), contractor.ID(), "")
	require.NoError(t, err)

	handler := commands.NewDeclineDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationIsForbidden)
	assert.Equal(t, directorder.StatusPending, testDirectOrder.Status())
}

func TestCancelDirectOrderCommandHandler_Handle_InProgressRejected(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	testDirectOrder := pendingDirectOrder(t, contractor.ID(), kernel.NewUUID())
	require.NoError(t, testDirectOrder.Accept())
	require.NoError(t, testDirectOrder.Start())

	directOrderRepo := new(MockDirectOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("DirectOrderRepository").Return(directOrderRepo)
	uow.On("Rollback", ctx).Return(nil)

	directOrderRepo.On("GetForUpdate", ctx, testDirectOrder.ID()).Return(testDirectOrder, nil).Once()

	cmd, err := commands.NewCancelDirectOrderCommand(testDirectOrder.ID(), contractor.ID())
	require.NoError(t, err)

	handler := commands.NewCancelDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, directorder.StatusInProgress, testDirectOrder.Status())
	directOrderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestStartDirectOrderCommandHandler_Handle_EitherPartyNoNotification(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	subcontractor := subcontractorCompany(t)
	testDirectOrder := pendingDirectOrder(t, contractor.ID(), subcontractor.ID())
	require.NoError(t, testDirectOrder.Accept())

	directOrderRepo := new(MockDirectOrderRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("DirectOrderRepository").Return(directOrderRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	directOrderRepo.On("GetForUpdate", ctx, testDirectOrder.ID()).Return(testDirectOrder, nil).Once()
	directOrderRepo.On("Update", ctx, testDirectOrder).Return(nil).Once()

	cmd, err := commands.NewStartDirectOrderCommand(testDirectOrder.ID(), contractor.ID())
	require.NoError(t, err)

	handler := commands.NewStartDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, directorder.StatusInProgress, testDirectOrder.Status())
	notificationRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestCompleteDirectOrderCommandHandler_Handle_NotifiesCounterparty(t *testing.T) {
	ctx := t.Context()

	contractor := contractorCompany(t)
	subcontractor := subcontractorCompany(t)
	testDirectOrder := pendingDirectOrder(t, contractor.ID(), subcontractor.ID())
	require.NoError(t, testDirectOrder.Accept())
	require.NoError(t, testDirectOrder.Start())

	directOrderRepo := new(MockDirectOrderRepository)
	companyRepo := new(MockCompanyRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("DirectOrderRepository").Return(directOrderRepo)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	directOrderRepo.On("GetForUpdate", ctx, testDirectOrder.ID()).Return(testDirectOrder, nil).Once()
	directOrderRepo.On("Update", ctx, testDirectOrder).Return(nil).Once()
	// subcontractor completes, so the contractor is notified
	companyRepo.On("Get", ctx, contractor.ID()).Return(contractor, nil).Once()

	var sent *notification.Notification
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*notification.Notification)
		}).
		Return(nil).Once()

	cmd, err := commands.NewCompleteDirectOrderCommand(testDirectOrder.ID(), subcontractor.ID())
	require.NoError(t, err)

	handler := commands.NewCompleteDirectOrderCommandHandler(directOrderUoWFactory{uow: uow})
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, directorder.StatusCompleted, testDirectOrder.Status())
	require.NotNil(t, sent)
	assert.Equal(t, notification.TypeDirectOrderCompleted, sent.Type())
	assert.True(t, sent.UserID().IsEqual(contractor.UserID()))
}
