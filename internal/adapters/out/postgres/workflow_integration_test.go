package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresadapter "buildmarket/internal/adapters/out/postgres"
	"buildmarket/internal/adapters/out/postgres/companyrepo"
	"buildmarket/internal/adapters/out/postgres/directorderrepo"
	"buildmarket/internal/adapters/out/postgres/notificationrepo"
	"buildmarket/internal/adapters/out/postgres/orderrepo"
	"buildmarket/internal/adapters/out/postgres/projectrepo"
	"buildmarket/internal/adapters/out/postgres/quoterepo"
	"buildmarket/internal/adapters/out/postgres/reviewrepo"
	"buildmarket/internal/core/application/usecases/commands"
	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/domain/model/order"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/core/domain/model/quote"
	"buildmarket/internal/core/ports"
	"buildmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactory adapts the concrete factory to the narrow per-workflow factory
// interfaces the command handlers declare. The concrete unit of work satisfies
// all of them.
type uowFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f uowFactory) Create() ports.UnitOfWork { return f.inner.Create() }

type companyUoWFactory struct{ uowFactory }

func (f companyUoWFactory) Create() commands.CompanyUoW { return f.inner.Create() }

type projectUoWFactory struct{ uowFactory }

func (f projectUoWFactory) Create() commands.ProjectUoW { return f.inner.Create() }

type quoteUoWFactory struct{ uowFactory }

func (f quoteUoWFactory) Create() commands.QuoteUoW { return f.inner.Create() }

type acceptQuoteUoWFactory struct{ uowFactory }

func (f acceptQuoteUoWFactory) Create() commands.AcceptQuoteUoW { return f.inner.Create() }

type orderUoWFactory struct{ uowFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.inner.Create() }

type reviewUoWFactory struct{ uowFactory }

func (f reviewUoWFactory) Create() commands.ReviewUoW { return f.inner.Create() }

type notificationUoWFactory struct{ uowFactory }

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f.inner.Create() }

// party is a registered company plus its mailbox owner.
type party struct {
	companyID kernel.UUID
	userID    kernel.UUID
}

// WorkflowIntegrationTestSuite drives the marketplace workflows end to end
// against a real PostgreSQL database: bidding, the acceptance cascade, order
// completion, rating aggregation and mailbox delivery.
type WorkflowIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
}

func (s *WorkflowIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(db.AutoMigrate(
		&companyrepo.CompanyDTO{},
		&projectrepo.ProjectDTO{},
		&quoterepo.QuoteDTO{},
		&orderrepo.OrderDTO{},
		&directorderrepo.DirectOrderDTO{},
		&reviewrepo.ReviewDTO{},
		&notificationrepo.NotificationDTO{},
	))

	s.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (s *WorkflowIntegrationTestSuite) SetupTest() {
	err := s.db.Exec(
		"TRUNCATE TABLE companies, projects, quotes, orders, direct_orders, reviews, notifications",
	).Error
	s.Require().NoError(err)
}

func (s *WorkflowIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *WorkflowIntegrationTestSuite) adapter() uowFactory {
	return uowFactory{inner: s.factory}
}

func (s *WorkflowIntegrationTestSuite) registerCompany(name string, role company.Role) party {
	p := party{companyID: kernel.NewUUID(), userID: kernel.NewUUID()}

	cmd, err := commands.NewRegisterCompanyCommand(p.companyID, p.userID, name, role)
	s.Require().NoError(err)

	handler := commands.NewRegisterCompanyCommandHandler(companyUoWFactory{s.adapter()})
	s.Require().NoError(handler.Handle(context.Background(), cmd))
	return p
}

func (s *WorkflowIntegrationTestSuite) createOpenProject(owner party) kernel.UUID {
	projectID := kernel.NewUUID()

	createCmd, err := commands.NewCreateProjectCommand(
		projectID, owner.companyID,
		"Warehouse foundation", "Slab and footings for a 2000 sqm warehouse", "Rotterdam",
		nil, nil, "concrete", nil,
	)
	s.Require().NoError(err)

	createHandler := commands.NewCreateProjectCommandHandler(projectUoWFactory{s.adapter()})
	s.Require().NoError(createHandler.Handle(context.Background(), createCmd))

	openCmd, err := commands.NewUpdateProjectStatusCommand(projectID, owner.companyID, project.StatusOpen)
	s.Require().NoError(err)

	openHandler := commands.NewUpdateProjectStatusCommandHandler(projectUoWFactory{s.adapter()})
	s.Require().NoError(openHandler.Handle(context.Background(), openCmd))
	return projectID
}

func (s *WorkflowIntegrationTestSuite) submitQuote(projectID kernel.UUID, bidder party, amount int64) kernel.UUID {
	quoteID := kernel.NewUUID()

	money, err := kernel.NewMoney(amount)
	s.Require().NoError(err)

	cmd, err := commands.NewSubmitQuoteCommand(quoteID, projectID, bidder.companyID, money, "", nil)
	s.Require().NoError(err)

	handler := commands.NewSubmitQuoteCommandHandler(quoteUoWFactory{s.adapter()})
	s.Require().NoError(handler.Handle(context.Background(), cmd))
	return quoteID
}

// completedOrderBetween runs one full bidding round between the two parties
// and completes the resulting order. Returns the order id.
func (s *WorkflowIntegrationTestSuite) completedOrderBetween(
	contractor, subcontractor party, amount int64,
) kernel.UUID {
	ctx := context.Background()
	projectID := s.createOpenProject(contractor)
	quoteID := s.submitQuote(projectID, subcontractor, amount)

	acceptCmd, err := commands.NewAcceptQuoteCommand(quoteID, contractor.companyID)
	s.Require().NoError(err)
	acceptHandler := commands.NewAcceptQuoteCommandHandler(acceptQuoteUoWFactory{s.adapter()})
	s.Require().NoError(acceptHandler.Handle(ctx, acceptCmd))

	orderID := s.orderIDByQuote(quoteID)

	completeCmd, err := commands.NewCompleteOrderCommand(orderID, subcontractor.companyID)
	s.Require().NoError(err)
	completeHandler := commands.NewCompleteOrderCommandHandler(orderUoWFactory{s.adapter()})
	s.Require().NoError(completeHandler.Handle(ctx, completeCmd))
	return orderID
}

func (s *WorkflowIntegrationTestSuite) orderIDByQuote(quoteID kernel.UUID) kernel.UUID {
	var dto orderrepo.OrderDTO
	s.Require().NoError(s.db.First(&dto, "quote_id = ?", quoteID.Bytes()).Error)

	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
	s.Require().NoError(err)
	return orderID
}

func (s *WorkflowIntegrationTestSuite) mailbox(p party) []*notification.Notification {
	entries, err := s.factory.Create().NotificationRepository().GetAllByUser(context.Background(), p.userID)
	s.Require().NoError(err)
	return entries
}

func (s *WorkflowIntegrationTestSuite) TestQuoteAcceptanceCascade() {
	ctx := context.Background()
	contractor := s.registerCompany("BuildCo", company.RoleContractor)
	winner := s.registerCompany("ConcretePros", company.RoleSubcontractor)
	loser := s.registerCompany("SlabWorks", company.RoleSubcontractor)

	projectID := s.createOpenProject(contractor)
	winningQuoteID := s.submitQuote(projectID, winner, 2_000_000)
	losingQuoteID := s.submitQuote(projectID, loser, 1_800_000)

	acceptCmd, err := commands.NewAcceptQuoteCommand(winningQuoteID, contractor.companyID)
	s.Require().NoError(err)
	acceptHandler := commands.NewAcceptQuoteCommandHandler(acceptQuoteUoWFactory{s.adapter()})
	s.Require().NoError(acceptHandler.Handle(ctx, acceptCmd))

	uow := s.factory.Create()

	winningQuote, err := uow.QuoteRepository().Get(ctx, winningQuoteID)
	s.Require().NoError(err)
	s.Equal(quote.StatusAccepted, winningQuote.Status())

	losingQuote, err := uow.QuoteRepository().Get(ctx, losingQuoteID)
	s.Require().NoError(err)
	s.Equal(quote.StatusRejected, losingQuote.Status())

	closedProject, err := uow.ProjectRepository().Get(ctx, projectID)
	s.Require().NoError(err)
	s.Equal(project.StatusClosed, closedProject.Status())

	newOrder, err := uow.OrderRepository().Get(ctx, s.orderIDByQuote(winningQuoteID))
	s.Require().NoError(err)
	s.Equal(order.StatusConfirmed, newOrder.Status())
	s.Equal(int64(2_000_000), newOrder.Amount().Amount())
	s.True(newOrder.ContractorCompanyID().IsEqual(contractor.companyID))
	s.True(newOrder.SubcontractorCompanyID().IsEqual(winner.companyID))

	winnerMailbox := s.mailbox(winner)
	s.Require().Len(winnerMailbox, 1)
	s.Equal(notification.TypeQuoteAccepted, winnerMailbox[0].Type())

	// The rejected bidder hears nothing.
	s.Empty(s.mailbox(loser))
}

func (s *WorkflowIntegrationTestSuite) TestConcurrentAcceptHasSingleWinner() {
	ctx := context.Background()
	contractor := s.registerCompany("BuildCo", company.RoleContractor)
	bidderA := s.registerCompany("ConcretePros", company.RoleSubcontractor)
	bidderB := s.registerCompany("SlabWorks", company.RoleSubcontractor)

	projectID := s.createOpenProject(contractor)
	quoteA := s.submitQuote(projectID, bidderA, 2_000_000)
	quoteB := s.submitQuote(projectID, bidderB, 1_800_000)

	handler := commands.NewAcceptQuoteCommandHandler(acceptQuoteUoWFactory{s.adapter()})
	results := make([]error, 2)

	var wg sync.WaitGroup
	for i, quoteID := range []kernel.UUID{quoteA, quoteB} {
		wg.Add(1)
		go func(slot int, id kernel.UUID) {
			defer wg.Done()
			cmd, err := commands.NewAcceptQuoteCommand(id, contractor.companyID)
			if err != nil {
				results[slot] = err
				return
			}
			results[slot] = handler.Handle(ctx, cmd)
		}(i, quoteID)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		default:
			s.ErrorIs(err, errs.ErrObjectAlreadyExists)
			conflicts++
		}
	}
	s.Equal(1, successes, "exactly one accept must win")
	s.Equal(1, conflicts, "the loser must see a conflict")

	var orderCount int64
	s.Require().NoError(s.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	s.Equal(int64(1), orderCount)
}

func (s *WorkflowIntegrationTestSuite) TestOrderCompletionCascadesProject() {
	ctx := context.Background()
	contractor := s.registerCompany("BuildCo", company.RoleContractor)
	subcontractor := s.registerCompany("ConcretePros", company.RoleSubcontractor)

	orderID := s.completedOrderBetween(contractor, subcontractor, 900_000)

	uow := s.factory.Create()

	completedOrder, err := uow.OrderRepository().Get(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(order.StatusCompleted, completedOrder.Status())

	completedProject, err := uow.ProjectRepository().Get(ctx, completedOrder.ProjectID())
	s.Require().NoError(err)
	s.Equal(project.StatusCompleted, completedProject.Status())

	// Subcontractor completed, so the contractor gets the mailbox entry.
	var sawCompletion bool
	for _, entry := range s.mailbox(contractor) {
		if entry.Type() == notification.TypeOrderCompleted {
			sawCompletion = true
		}
	}
	s.True(sawCompletion)
}

func (s *WorkflowIntegrationTestSuite) TestReviewAggregationAcrossOrders() {
	ctx := context.Background()
	contractor := s.registerCompany("BuildCo", company.RoleContractor)
	subcontractor := s.registerCompany("ConcretePros", company.RoleSubcontractor)

	firstOrderID := s.completedOrderBetween(contractor, subcontractor, 500_000)
	secondOrderID := s.completedOrderBetween(contractor, subcontractor, 700_000)

	reviewHandler := commands.NewCreateReviewCommandHandler(reviewUoWFactory{s.adapter()})

	firstReview, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), firstOrderID, contractor.companyID, 5, "flawless pour",
	)
	s.Require().NoError(err)
	s.Require().NoError(reviewHandler.Handle(ctx, firstReview))

	secondReview, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), secondOrderID, contractor.companyID, 3, "late on finishing",
	)
	s.Require().NoError(err)
	s.Require().NoError(reviewHandler.Handle(ctx, secondReview))

	reviewee, err := s.factory.Create().CompanyRepository().Get(ctx, subcontractor.companyID)
	s.Require().NoError(err)
	s.Require().NotNil(reviewee.AverageRating())
	s.InDelta(4.0, *reviewee.AverageRating(), 0.001)

	// A second review on the same order by the same party is a conflict.
	duplicate, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), firstOrderID, contractor.companyID, 1, "",
	)
	s.Require().NoError(err)
	s.ErrorIs(reviewHandler.Handle(ctx, duplicate), errs.ErrObjectAlreadyExists)
}

func (s *WorkflowIntegrationTestSuite) TestDuplicateQuoteRejected() {
	ctx := context.Background()
	contractor := s.registerCompany("BuildCo", company.RoleContractor)
	bidder := s.registerCompany("ConcretePros", company.RoleSubcontractor)

	projectID := s.createOpenProject(contractor)
	s.submitQuote(projectID, bidder, 1_000_000)

	money, err := kernel.NewMoney(950_000)
	s.Require().NoError(err)
	cmd, err := commands.NewSubmitQuoteCommand(kernel.NewUUID(), projectID, bidder.companyID, money, "", nil)
	s.Require().NoError(err)

	handler := commands.NewSubmitQuoteCommandHandler(quoteUoWFactory{s.adapter()})
	s.ErrorIs(handler.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
}

func (s *WorkflowIntegrationTestSuite) TestMarkAllNotificationsRead() {
	ctx := context.Background()
	contractor := s.registerCompany("BuildCo", company.RoleContractor)
	bidder := s.registerCompany("ConcretePros", company.RoleSubcontractor)

	projectID := s.createOpenProject(contractor)
	s.submitQuote(projectID, bidder, 1_000_000)

	// The owner now has one unread quote_received entry.
	before := s.mailbox(contractor)
	s.Require().Len(before, 1)
	s.False(before[0].IsRead())

	cmd, err := commands.NewMarkAllNotificationsReadCommand(contractor.userID)
	s.Require().NoError(err)
	handler := commands.NewMarkAllNotificationsReadCommandHandler(notificationUoWFactory{s.adapter()})
	s.Require().NoError(handler.Handle(ctx, cmd))

	after := s.mailbox(contractor)
	s.Require().Len(after, 1)
	s.True(after[0].IsRead())
}

func (s *WorkflowIntegrationTestSuite) TestRollbackDiscardsWrites() {
	ctx := context.Background()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	newCompany, err := company.NewCompany(
		kernel.NewUUID(), kernel.NewUUID(), "Ghost Builders", company.RoleContractor,
	)
	s.Require().NoError(err)
	s.Require().NoError(uow.CompanyRepository().Add(ctx, newCompany))
	s.Require().NoError(uow.Rollback(ctx))

	_, err = s.factory.Create().CompanyRepository().Get(ctx, newCompany.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestWorkflowIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(WorkflowIntegrationTestSuite))
}
