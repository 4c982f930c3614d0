package directorderrepo

import (
	"context"
	"errors"

	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDirectOrderRepository implements DirectOrderRepository using GORM.
type GormDirectOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDirectOrderRepository creates a new GORM direct order repository.
func NewGormDirectOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormDirectOrderRepository {
	return &GormDirectOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new direct order to the database.
func (r *GormDirectOrderRepository) Add(ctx context.Context, aggregate *directorder.DirectOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing direct order to the database.
func (r *GormDirectOrderRepository) Update(ctx context.Context, aggregate *directorder.DirectOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DirectOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("directOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a direct order by ID.
func (r *GormDirectOrderRepository) Get(ctx context.Context, id kernel.UUID) (*directorder.DirectOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a direct order by ID while holding a row-level write lock.
func (r *GormDirectOrderRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*directorder.DirectOrder, error) {
	return r.get(ctx, id, true)
}

func (r *GormDirectOrderRepository) get(
	ctx context.Context,
	id kernel.UUID,
	lock bool,
) (*directorder.DirectOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DirectOrderDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("directOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
