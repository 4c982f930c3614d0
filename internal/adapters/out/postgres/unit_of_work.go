// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work wraps one business transaction: repositories obtained
// from it run on the same database transaction, and every aggregate they write
// is tracked until the transaction completes.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ProjectRepository().Add(ctx, newProject); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"buildmarket/internal/adapters/out/postgres/companyrepo"
	"buildmarket/internal/adapters/out/postgres/directorderrepo"
	"buildmarket/internal/adapters/out/postgres/notificationrepo"
	"buildmarket/internal/adapters/out/postgres/orderrepo"
	"buildmarket/internal/adapters/out/postgres/projectrepo"
	"buildmarket/internal/adapters/out/postgres/quoterepo"
	"buildmarket/internal/adapters/out/postgres/reviewrepo"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// workflows never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the marketplace
// repositories. Repositories returned while a transaction is active run inside
// it; otherwise they run on the base connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again while a
// transaction is active is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Rolling back after a commit, or
// without an active transaction, is a no-op so handlers can defer it safely.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CompanyRepository returns a company repository bound to the current transaction.
func (uow *GormUnitOfWork) CompanyRepository() ports.CompanyRepository {
	return companyrepo.NewGormCompanyRepository(uow.conn(), uow)
}

// ProjectRepository returns a project repository bound to the current transaction.
func (uow *GormUnitOfWork) ProjectRepository() ports.ProjectRepository {
	return projectrepo.NewGormProjectRepository(uow.conn(), uow)
}

// QuoteRepository returns a quote repository bound to the current transaction.
func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return quoterepo.NewGormQuoteRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DirectOrderRepository returns a direct order repository bound to the current transaction.
func (uow *GormUnitOfWork) DirectOrderRepository() ports.DirectOrderRepository {
	return directorderrepo.NewGormDirectOrderRepository(uow.conn(), uow)
}

// ReviewRepository returns a review repository bound to the current transaction.
func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn(), uow)
}

// NotificationRepository returns a notification repository bound to the current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
