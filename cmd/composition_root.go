package cmd

import (
	"log/slog"

	"buildmarket/internal/adapters/in/http"
	"buildmarket/internal/adapters/out/postgres"
	"buildmarket/internal/core/application/usecases/commands"
	"buildmarket/internal/core/application/usecases/queries"
	"buildmarket/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) companyUoWFactory() commands.CompanyUoWFactory {
	return FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) projectUoWFactory() commands.ProjectUoWFactory {
	return FuncProjectUoWFactory(func() commands.ProjectUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) acceptQuoteUoWFactory() commands.AcceptQuoteUoWFactory {
	return FuncAcceptQuoteUoWFactory(func() commands.AcceptQuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directOrderUoWFactory() commands.DirectOrderUoWFactory {
	return FuncDirectOrderUoWFactory(func() commands.DirectOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deadlineSweepUoWFactory() commands.DeadlineSweepUoWFactory {
	return FuncDeadlineSweepUoWFactory(func() commands.DeadlineSweepUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateNotifyExpiredProjectsCommandHandler() commands.NotifyExpiredProjectsCommandHandler {
	return commands.NewNotifyExpiredProjectsCommandHandler(c.deadlineSweepUoWFactory())
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateNotifyExpiredProjectsCommandHandler(), logger)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	cmds := http.Commands{
		RegisterCompany:          commands.NewRegisterCompanyCommandHandler(c.companyUoWFactory()),
		CreateProject:            commands.NewCreateProjectCommandHandler(c.projectUoWFactory()),
		UpdateProject:            commands.NewUpdateProjectCommandHandler(c.projectUoWFactory()),
		UpdateProjectStatus:      commands.NewUpdateProjectStatusCommandHandler(c.projectUoWFactory()),
		SubmitQuote:              commands.NewSubmitQuoteCommandHandler(c.quoteUoWFactory()),
		WithdrawQuote:            commands.NewWithdrawQuoteCommandHandler(c.quoteUoWFactory()),
		AcceptQuote:              commands.NewAcceptQuoteCommandHandler(c.acceptQuoteUoWFactory()),
		RejectQuote:              commands.NewRejectQuoteCommandHandler(c.quoteUoWFactory()),
		CreateDirectOrder:        commands.NewCreateDirectOrderCommandHandler(c.directOrderUoWFactory()),
		AcceptDirectOrder:        commands.NewAcceptDirectOrderCommandHandler(c.directOrderUoWFactory()),
		DeclineDirectOrder:       commands.NewDeclineDirectOrderCommandHandler(c.directOrderUoWFactory()),
		StartDirectOrder:         commands.NewStartDirectOrderCommandHandler(c.directOrderUoWFactory()),
		CompleteDirectOrder:      commands.NewCompleteDirectOrderCommandHandler(c.directOrderUoWFactory()),
		CancelDirectOrder:        commands.NewCancelDirectOrderCommandHandler(c.directOrderUoWFactory()),
		CompleteOrder:            commands.NewCompleteOrderCommandHandler(c.orderUoWFactory()),
		CreateReview:             commands.NewCreateReviewCommandHandler(c.reviewUoWFactory()),
		MarkNotificationRead:     commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory()),
		MarkAllNotificationsRead: commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory()),
	}

	qrs := http.Queries{
		GetOpenProjects:   queries.NewGetOpenProjectsQueryHandler(c.gormDB),
		GetCompanyReviews: queries.NewGetCompanyReviewsQueryHandler(c.gormDB),
		GetNotifications:  queries.NewGetNotificationsQueryHandler(c.gormDB),
	}

	return http.NewServer(cmds, qrs)
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncProjectUoWFactory func() commands.ProjectUoW

func (f FuncProjectUoWFactory) Create() commands.ProjectUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncAcceptQuoteUoWFactory func() commands.AcceptQuoteUoW

func (f FuncAcceptQuoteUoWFactory) Create() commands.AcceptQuoteUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncDirectOrderUoWFactory func() commands.DirectOrderUoW

func (f FuncDirectOrderUoWFactory) Create() commands.DirectOrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncDeadlineSweepUoWFactory func() commands.DeadlineSweepUoW

func (f FuncDeadlineSweepUoWFactory) Create() commands.DeadlineSweepUoW {
	return f()
}
