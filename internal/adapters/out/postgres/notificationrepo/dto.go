// Package notificationrepo persists mailbox entries, mapping them to and from
// their relational representation.
package notificationrepo

import (
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Type        int
	Title       string
	Message     string
	IsRead      bool       `gorm:"index"`
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var referenceID *uuid.UUID
	if id := aggregate.ReferenceID(); id != nil {
		raw := id.Bytes()
		referenceID = &raw
	}

	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		Type:        int(aggregate.Type()),
		Title:       aggregate.Title(),
		Message:     aggregate.Message(),
		IsRead:      aggregate.IsRead(),
		ReferenceID: referenceID,
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var referenceID *kernel.UUID
	if dto.ReferenceID != nil {
		refID, refErr := kernel.UUIDFromBytes((*dto.ReferenceID)[:])
		if refErr != nil {
			return nil, refErr
		}
		referenceID = &refID
	}

	return notification.RestoreNotification(
		id,
		userID,
		notification.Type(dto.Type),
		dto.Title,
		dto.Message,
		dto.IsRead,
		referenceID,
	)
}
