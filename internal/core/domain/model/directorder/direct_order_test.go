package directorder_test

import (
	"testing"

	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectOrder(t *testing.T) *directorder.DirectOrder {
	t.Helper()
	amount, err := kernel.NewMoney(20_000)
	require.NoError(t, err)
	d, err := directorder.NewDirectOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Electrical rough-in",
		"Second floor, 12 units",
		"Munich",
		amount,
		nil,
		"electrical",
	)
	require.NoError(t, err)
	return d
}

func TestNewDirectOrder(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		d := newTestDirectOrder(t)
		assert.Equal(t, directorder.StatusPending, d.Status())
		assert.Empty(t, d.DeclineReason())
	})

	t.Run("rejects_self_dealing", func(t *testing.T) {
		companyID := kernel.NewUUID()
		amount, err := kernel.NewMoney(100)
		require.NoError(t, err)
		_, err = directorder.NewDirectOrder(
			kernel.NewUUID(), companyID, companyID,
			"Electrical rough-in", "", "", amount, nil, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_title_and_amount", func(t *testing.T) {
		amount, err := kernel.NewMoney(100)
		require.NoError(t, err)
		_, err = directorder.NewDirectOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "", "", amount, nil, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = directorder.NewDirectOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Electrical rough-in", "", "", kernel.Money{}, nil, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDirectOrder_Lifecycle(t *testing.T) {
	t.Run("happy_path", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Accept())
		require.NoError(t, d.Start())
		require.NoError(t, d.Complete())
		assert.Equal(t, directorder.StatusCompleted, d.Status())
	})

	t.Run("decline_records_reason", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Decline("fully booked this quarter"))
		assert.Equal(t, directorder.StatusDeclined, d.Status())
		assert.Equal(t, "fully booked this quarter", d.DeclineReason())
	})

	t.Run("decline_requires_pending", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Accept())
		err := d.Decline("too late")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, d.DeclineReason())
	})

	t.Run("cancel_from_pending", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Cancel())
		assert.Equal(t, directorder.StatusCancelled, d.Status())
	})

	t.Run("cancel_from_accepted", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Accept())
		require.NoError(t, d.Cancel())
		assert.Equal(t, directorder.StatusCancelled, d.Status())
	})

	t.Run("cancel_from_in_progress_rejected", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Accept())
		require.NoError(t, d.Start())
		require.ErrorIs(t, d.Cancel(), errs.ErrValueIsInvalid)
	})

	t.Run("start_requires_accepted", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.ErrorIs(t, d.Start(), errs.ErrValueIsInvalid)
	})

	t.Run("complete_requires_in_progress", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Accept())
		require.ErrorIs(t, d.Complete(), errs.ErrValueIsInvalid)
	})

	t.Run("terminal_states_are_final", func(t *testing.T) {
		d := newTestDirectOrder(t)
		require.NoError(t, d.Decline(""))
		require.ErrorIs(t, d.Accept(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, d.Cancel(), errs.ErrValueIsInvalid)
	})
}

func TestDirectOrder_Parties(t *testing.T) {
	contractorID := kernel.NewUUID()
	subcontractorID := kernel.NewUUID()
	amount, err := kernel.NewMoney(100)
	require.NoError(t, err)
	d, err := directorder.NewDirectOrder(
		kernel.NewUUID(), contractorID, subcontractorID,
		"Electrical rough-in", "", "", amount, nil, "",
	)
	require.NoError(t, err)

	assert.True(t, d.IsContractor(contractorID))
	assert.False(t, d.IsContractor(subcontractorID))
	assert.True(t, d.IsSubcontractor(subcontractorID))
	assert.True(t, d.IsParty(contractorID))
	assert.True(t, d.IsParty(subcontractorID))
	assert.False(t, d.IsParty(kernel.NewUUID()))
}

func TestRestoreDirectOrder(t *testing.T) {
	amount, err := kernel.NewMoney(20_000)
	require.NoError(t, err)

	t.Run("keeps_status_and_reason", func(t *testing.T) {
		d, err := directorder.RestoreDirectOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Electrical rough-in", "", "", amount, nil, "",
			directorder.StatusDeclined, "fully booked",
		)
		require.NoError(t, err)
		assert.Equal(t, directorder.StatusDeclined, d.Status())
		assert.Equal(t, "fully booked", d.DeclineReason())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := directorder.RestoreDirectOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Electrical rough-in", "", "", amount, nil, "",
			directorder.StatusUnknown, "",
		)
		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []directorder.Status{
		directorder.StatusPending, directorder.StatusAccepted,
		directorder.StatusDeclined, directorder.StatusInProgress,
		directorder.StatusCompleted, directorder.StatusCancelled,
	} {
		parsed, err := directorder.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := directorder.StatusFromString("unknown")
	require.Error(t, err)
}
