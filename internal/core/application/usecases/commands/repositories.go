// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"buildmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each workflow declares the narrowest composition it needs; the concrete
// postgres unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// ProjectRepoFactory provides access to the project repository within a transaction.
	ProjectRepoFactory interface {
		ProjectRepository() ports.ProjectRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DirectOrderRepoFactory provides access to the direct order repository within a transaction.
	DirectOrderRepoFactory interface {
		DirectOrderRepository() ports.DirectOrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// CompanyUoW manages transactions for company-only operations.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	// CompanyUoWFactory creates new company unit of work instances.
	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// ProjectUoW manages transactions for project lifecycle operations.
	// Company access is needed to check the caller's role.
	ProjectUoW interface {
		TxManager
		ProjectRepoFactory
		CompanyRepoFactory
	}

	// ProjectUoWFactory creates new project unit of work instances.
	ProjectUoWFactory interface {
		Create() ProjectUoW
	}

	// QuoteUoW manages transactions for bidding operations that touch a quote,
	// its project, the parties and the mailbox.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
		ProjectRepoFactory
		CompanyRepoFactory
		NotificationRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// AcceptQuoteUoW manages the quote acceptance cascade, which additionally
	// creates an order.
	AcceptQuoteUoW interface {
		QuoteUoW
		OrderRepoFactory
	}

	// AcceptQuoteUoWFactory creates new quote acceptance unit of work instances.
	AcceptQuoteUoWFactory interface {
		Create() AcceptQuoteUoW
	}

	// OrderUoW manages transactions for order completion, which cascades into
	// the project and notifies the counterparty.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProjectRepoFactory
		CompanyRepoFactory
		NotificationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for review creation and the derived
	// rating recomputation.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		CompanyRepoFactory
		NotificationRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// DirectOrderUoW manages transactions for the direct order lifecycle.
	DirectOrderUoW interface {
		TxManager
		DirectOrderRepoFactory
		CompanyRepoFactory
		NotificationRepoFactory
	}

	// DirectOrderUoWFactory creates new direct order unit of work instances.
	DirectOrderUoWFactory interface {
		Create() DirectOrderUoW
	}

	// NotificationUoW manages transactions for mailbox read-state operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// DeadlineSweepUoW manages transactions for the project deadline sweep.
	DeadlineSweepUoW interface {
		TxManager
		ProjectRepoFactory
		CompanyRepoFactory
		NotificationRepoFactory
	}

	// DeadlineSweepUoWFactory creates new deadline sweep unit of work instances.
	DeadlineSweepUoWFactory interface {
		Create() DeadlineSweepUoW
	}
)
