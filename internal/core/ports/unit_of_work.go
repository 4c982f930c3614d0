package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Rolling back without an active transaction is a no-op.
	Rollback(ctx context.Context) error

	// CompanyRepository returns a CompanyRepository bound to the current transaction.
	CompanyRepository() CompanyRepository

	// ProjectRepository returns a ProjectRepository bound to the current transaction.
	ProjectRepository() ProjectRepository

	// QuoteRepository returns a QuoteRepository bound to the current transaction.
	QuoteRepository() QuoteRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DirectOrderRepository returns a DirectOrderRepository bound to the current transaction.
	DirectOrderRepository() DirectOrderRepository

	// ReviewRepository returns a ReviewRepository bound to the current transaction.
	ReviewRepository() ReviewRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository
}
