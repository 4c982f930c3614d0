package projectrepo

import (
	"context"
	"errors"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository implements ProjectRepository using GORM.
type GormProjectRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProjectRepository creates a new GORM project repository.
func NewGormProjectRepository(db *gorm.DB, tracker aggregateTracker) *GormProjectRepository {
	return &GormProjectRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new project to the database.
func (r *GormProjectRepository) Add(ctx context.Context, aggregate *project.Project) error {
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

// Update saves an existing project to the database.
func (r *GormProjectRepository) Update(ctx context.Context, aggregate *project.Project) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProjectDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("project", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a project by ID.
func (r *GormProjectRepository) Get(ctx context.Context, id kernel.UUID) (*project.Project, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a project by ID while holding a row-level write lock.
func (r *GormProjectRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*project.Project, error) {
	return r.get(ctx, id, true)
}

// GetAllOpenPastDeadline retrieves open projects whose deadline lies before moment.
func (r *GormProjectRepository) GetAllOpenPastDeadline(
	ctx context.Context,
	moment time.Time,
) ([]*project.Project, error) {
	var dtos []ProjectDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND deadline IS NOT NULL AND deadline < ?", project.StatusOpen, moment).
		Error
	if err != nil {
		return nil, err
	}

	projects := make([]*project.Project, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *GormProjectRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*project.Project, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ProjectDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("project", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
