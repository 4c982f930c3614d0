package companyrepo

import (
	"context"
	"errors"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new company to the database.
func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("company", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing company to the database.
func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CompanyDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("company", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a company by ID.
func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a company by ID while holding a row-level write lock.
func (r *GormCompanyRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	return r.get(ctx, id, true)
}

func (r *GormCompanyRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto CompanyDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
