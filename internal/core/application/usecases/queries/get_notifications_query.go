package queries

import (
	"errors"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's notification mailbox, newest first,
// together with the number of unread entries. unreadOnly narrows the listing
// to entries not yet marked read.
type GetNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the user's mailbox.
func NewGetNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the mailbox owner.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// UnreadOnly reports whether read entries are filtered out.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// GetNotificationsQueryResponse is the mailbox read model.
// UnreadCount always covers the whole mailbox, regardless of the filter.
type GetNotificationsQueryResponse struct {
	UnreadCount   int64
	Notifications []NotificationResponse
}

// NotificationResponse represents one mailbox entry.
type NotificationResponse struct {
	ID          kernel.UUID
	Type        string
	Title       string
	Message     string
	IsRead      bool
	ReferenceID *kernel.UUID
	CreatedAt   time.Time
}
