package quoterepo

import (
	"context"
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/quote"
	"buildmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote to the database. The unique index on
// (project_id, company_id) backs up the handler-level duplicate check.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"quote",
				aggregate.ID().String(),
				fmt.Errorf("company %s already quoted project %s", aggregate.CompanyID(), aggregate.ProjectID()),
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quote to the database.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&QuoteDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("quote", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quote by ID.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a quote by ID while holding a row-level write lock.
func (r *GormQuoteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	return r.get(ctx, id, true)
}

// GetByProjectAndCompany retrieves a company's quote on a project, any status.
func (r *GormQuoteRepository) GetByProjectAndCompany(
	ctx context.Context,
	projectID, companyID kernel.UUID,
) (*quote.Quote, error) {
	if err := errors.Join(projectID.Validate(), companyID.Validate()); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "project_id = ? AND company_id = ?", projectID.Bytes(), companyID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"quote",
				fmt.Sprintf("project %s company %s", projectID, companyID),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSubmittedByProjectForUpdate retrieves every still-submitted quote on a
// project, each under a row-level write lock, ordered by id for a stable
// locking order.
func (r *GormQuoteRepository) GetAllSubmittedByProjectForUpdate(
	ctx context.Context,
	projectID kernel.UUID,
) ([]*quote.Quote, error) {
	if err := projectID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id").
		Find(&dtos, "project_id = ? AND status = ?", projectID.Bytes(), quote.StatusSubmitted).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByProject retrieves all quotes on a project, newest first.
func (r *GormQuoteRepository) GetAllByProject(
	ctx context.Context,
	projectID kernel.UUID,
) ([]*quote.Quote, error) {
	if err := projectID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "project_id = ?", projectID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []QuoteDTO) ([]*quote.Quote, error) {
	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *GormQuoteRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto QuoteDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
