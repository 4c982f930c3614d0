package commands_test

import (
	"context"
	"time"

	"buildmarket/internal/core/application/usecases/commands"
	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/domain/model/order"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/core/domain/model/quote"
	"buildmarket/internal/core/domain/model/review"
	"buildmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

type MockProjectRepository struct{ mock.Mock }

func (m *MockProjectRepository) Add(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Get(ctx context.Context, id kernel.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) GetAllOpenPastDeadline(
	ctx context.Context, moment time.Time,
) ([]*project.Project, error) {
	args := m.Called(ctx, moment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*project.Project), args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetByProjectAndCompany(
	ctx context.Context, projectID, companyID kernel.UUID,
) (*quote.Quote, error) {
	args := m.Called(ctx, projectID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetAllSubmittedByProjectForUpdate(
	ctx context.Context, projectID kernel.UUID,
) ([]*quote.Quote, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetAllByProject(
	ctx context.Context, projectID kernel.UUID,
) ([]*quote.Quote, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDirectOrderRepository struct{ mock.Mock }

func (m *MockDirectOrderRepository) Add(ctx context.Context, d *directorder.DirectOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDirectOrderRepository) Update(ctx context.Context, d *directorder.DirectOrder) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDirectOrderRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*directorder.DirectOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directorder.DirectOrder), args.Error(1)
}

func (m *MockDirectOrderRepository) GetForUpdate(
	ctx context.Context, id kernel.UUID,
) (*directorder.DirectOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directorder.DirectOrder), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByOrderAndReviewer(
	ctx context.Context, orderID, reviewerCompanyID kernel.UUID,
) (*review.Review, error) {
	args := m.Called(ctx, orderID, reviewerCompanyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAllByReviewee(
	ctx context.Context, revieweeCompanyID kernel.UUID,
) ([]*review.Review, error) {
	args := m.Called(ctx, revieweeCompanyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

func (m *MockReviewRepository) AverageRatingByReviewee(
	ctx context.Context, revieweeCompanyID kernel.UUID,
) (float64, bool, error) {
	args := m.Called(ctx, revieweeCompanyID)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllReadByUser(
	ctx context.Context, userID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every workflow unit of work composition.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) ProjectRepository() ports.ProjectRepository {
	args := m.Called()
	return args.Get(0).(ports.ProjectRepository)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DirectOrderRepository() ports.DirectOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DirectOrderRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

// Factory adapters so one mock UoW serves every handler signature.

type companyUoWFactory struct{ uow *MockUoW }

func (f companyUoWFactory) Create() commands.CompanyUoW { return f.uow }

type projectUoWFactory struct{ uow *MockUoW }

func (f projectUoWFactory) Create() commands.ProjectUoW { return f.uow }

type quoteUoWFactory struct{ uow *MockUoW }

func (f quoteUoWFactory) Create() commands.QuoteUoW { return f.uow }

type acceptQuoteUoWFactory struct{ uow *MockUoW }

func (f acceptQuoteUoWFactory) Create() commands.AcceptQuoteUoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type reviewUoWFactory struct{ uow *MockUoW }

func (f reviewUoWFactory) Create() commands.ReviewUoW { return f.uow }

type directOrderUoWFactory struct{ uow *MockUoW }

func (f directOrderUoWFactory) Create() commands.DirectOrderUoW { return f.uow }

type notificationUoWFactory struct{ uow *MockUoW }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type deadlineSweepUoWFactory struct{ uow *MockUoW }

func (f deadlineSweepUoWFactory) Create() commands.DeadlineSweepUoW { return f.uow }
