package notificationrepo

import (
	"context"
	"errors"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
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

// Update saves an existing notification to the database.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByUser retrieves a user's mailbox, newest first.
func (r *GormNotificationRepository) GetAllByUser(
	ctx context.Context,
	userID kernel.UUID,
) ([]*notification.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "user_id = ?", userID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkAllReadByUser flips every unread entry in a user's mailbox.
func (r *GormNotificationRepository) MarkAllReadByUser(ctx context.Context, userID kernel.UUID) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = FALSE", userID.Bytes()).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
