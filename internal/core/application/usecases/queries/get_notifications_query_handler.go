package queries

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves a user's mailbox from the database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for mailbox queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's notifications.
// Entries come back newest first; the unread count covers the whole mailbox.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	response := GetNotificationsQueryResponse{
		Notifications: make([]NotificationResponse, 0),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = ? AND is_read = FALSE
	`, query.UserID().Bytes()).Row()
	if err := row.Scan(&response.UnreadCount); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	listSQL := `
		SELECT id, type, title, message, is_read, reference_id, created_at
		FROM notifications
		WHERE user_id = ?
	`
	if query.UnreadOnly() {
		listSQL += ` AND is_read = FALSE`
	}
	listSQL += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(listSQL, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry NotificationResponse
		var id uuid.UUID
		var referenceID *uuid.UUID
		var kind int

		err = rows.Scan(
			&id,
			&kind,
			&entry.Title,
			&entry.Message,
			&entry.IsRead,
			&referenceID,
			&entry.CreatedAt,
		)
		if err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetNotificationsQueryResponse{}, err
		}
		if referenceID != nil {
			refID, refErr := kernel.UUIDFromBytes((*referenceID)[:])
			if refErr != nil {
				return GetNotificationsQueryResponse{}, refErr
			}
			entry.ReferenceID = &refID
		}
		entry.Type = notification.Type(kind).String()

		response.Notifications = append(response.Notifications, entry)
	}

	if err = rows.Err(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	return response, nil
}
