// Package notification contains the Notification entity: an append-only
// mailbox entry created as a side effect of workflow transitions. Creation is
// durable (it shares the triggering transaction); delivery and read tracking
// are a plain mailbox, not a push channel.
package notification

import (
	"errors"
	"fmt"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification instance was
	// not created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

// Notification is mutated only to flip its read flag.
type Notification struct {
	id          kernel.UUID
	userID      kernel.UUID
	kind        Type
	title       string
	message     string
	isRead      bool
	referenceID *kernel.UUID

	isConstructed bool
}

// NewNotification creates an unread Notification for the given user mailbox.
// referenceID optionally points back at the entity that caused it.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	kind Type,
	title string,
	message string,
	referenceID *kernel.UUID,
) (*Notification, error) {
	n := &Notification{
		message:       message,
		referenceID:   referenceID,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setKind(kind),
		n.setTitle(title),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	kind Type,
	title string,
	message string,
	isRead bool,
	referenceID *kernel.UUID,
) (*Notification, error) {
	n, err := NewNotification(id, userID, kind, title, message, referenceID)
	if err != nil {
		return nil, err
	}
	n.isRead = isRead
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the mailbox owner.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) Type() Type {
	return n.kind
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

// ReferenceID returns the causing entity's id, nil if none was recorded.
func (n *Notification) ReferenceID() *kernel.UUID {
	return n.referenceID
}

// MarkRead flips the read flag. Marking an already-read entry is a no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("userID: %w", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setKind(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}
