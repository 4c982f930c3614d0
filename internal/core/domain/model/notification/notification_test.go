package notification_test

import (
	"testing"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Run("starts_unread", func(t *testing.T) {
		refID := kernel.NewUUID()
		n, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(),
			notification.TypeQuoteReceived,
			"New quote received",
			"A subcontractor submitted a quote on your project",
			&refID,
		)
		require.NoError(t, err)
		assert.False(t, n.IsRead())
		assert.Equal(t, notification.TypeQuoteReceived, n.Type())
		require.NotNil(t, n.ReferenceID())
		assert.True(t, n.ReferenceID().IsEqual(refID))
	})

	t.Run("reference_optional", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(),
			notification.TypeOrderCompleted,
			"Order completed", "", nil,
		)
		require.NoError(t, err)
		assert.Nil(t, n.ReferenceID())
	})

	t.Run("requires_title", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(),
			notification.TypeQuoteReceived,
			"", "", nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_type", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(),
			notification.TypeUnknown,
			"New quote received", "", nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(),
		notification.TypeQuoteAccepted,
		"Quote accepted", "", nil,
	)
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.IsRead())

	// idempotent
	n.MarkRead()
	assert.True(t, n.IsRead())
}

func TestRestoreNotification(t *testing.T) {
	n, err := notification.RestoreNotification(
		kernel.NewUUID(), kernel.NewUUID(),
		notification.TypeReviewReceived,
		"New review", "You received a 5 star review", true, nil,
	)
	require.NoError(t, err)
	assert.True(t, n.IsRead())
}

func TestTypeFromString(t *testing.T) {
	for _, tag := range []notification.Type{
		notification.TypeQuoteReceived, notification.TypeQuoteAccepted,
		notification.TypeQuoteRejected, notification.TypeOrderConfirmed,
		notification.TypeOrderCompleted, notification.TypeReviewReceived,
		notification.TypeProjectUpdated, notification.TypeDirectOrderReceived,
		notification.TypeDirectOrderAccepted, notification.TypeDirectOrderDeclined,
		notification.TypeDirectOrderCompleted, notification.TypeDirectOrderCancelled,
	} {
		parsed, err := notification.TypeFromString(tag.String())
		require.NoError(t, err)
		assert.Equal(t, tag, parsed)
	}

	_, err := notification.TypeFromString("unknown")
	require.Error(t, err)
}
