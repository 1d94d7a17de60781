package delivery_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestDelivery(t *testing.T, needsApproval bool) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.MustMoney(150),
		"",
		needsApproval,
		t0,
	)
	require.NoError(t, err)
	return d
}

func approvalFor(t *testing.T, d *delivery.Delivery, action delivery.ApprovalAction, at time.Time) delivery.Approval {
	t.Helper()
	a, err := delivery.NewApproval(kernel.NewUUID(), d.ID(), action, "motivo", kernel.NewUUID(), at)
	require.NoError(t, err)
	return a
}

func TestNewDelivery(t *testing.T) {
	t.Run("needs approval starts at A_LIBERAR", func(t *testing.T) {
		d := newTestDelivery(t, true)

		assert.Equal(t, delivery.ALiberar, d.Status())
		assert.Nil(t, d.StartedAt())
		assert.Empty(t, d.Approvals())
		require.NoError(t, d.Validate())
	})

	t.Run("no approval needed starts at INICIADO", func(t *testing.T) {
		d := newTestDelivery(t, false)

		assert.Equal(t, delivery.Iniciado, d.Status())
		require.NotNil(t, d.StartedAt())
		assert.Equal(t, t0, *d.StartedAt())
	})

	t.Run("freight is recorded as computed", func(t *testing.T) {
		d := newTestDelivery(t, false)

		assert.Equal(t, "150.00", d.Freight().String())
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.Money{}, "", false, t0,
		)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var d *delivery.Delivery
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, d.Validate())
	})
}

func TestDelivery_RecordApproval(t *testing.T) {
	t.Run("APROVADO releases a pending delivery", func(t *testing.T) {
		d := newTestDelivery(t, true)
		t1 := t0.Add(time.Hour)

		effect, err := d.RecordApproval(approvalFor(t, d, delivery.ActionApproved, t1))

		require.NoError(t, err)
		assert.Equal(t, delivery.EffectReleaseOrders, effect)
		assert.Equal(t, delivery.Iniciado, d.Status())
		require.NotNil(t, d.StartedAt())
		assert.Equal(t, t1, *d.StartedAt())
		require.Len(t, d.Approvals(), 1)
		assert.Equal(t, delivery.ActionApproved, d.Approvals()[0].Action())
	})

	t.Run("REJEITADO terminates a pending delivery and frees orders", func(t *testing.T) {
		d := newTestDelivery(t, true)

		effect, err := d.RecordApproval(approvalFor(t, d, delivery.ActionRejected, t0.Add(time.Hour)))

		require.NoError(t, err)
		assert.Equal(t, delivery.EffectUnassignOrders, effect)
		assert.Equal(t, delivery.Rejeitado, d.Status())
	})

	t.Run("NOVA_LIBERACAO suspends an active delivery", func(t *testing.T) {
		d := newTestDelivery(t, false)

		effect, err := d.RecordApproval(approvalFor(t, d, delivery.ActionReapprovalNeeded, t0.Add(time.Hour)))

		require.NoError(t, err)
		assert.Equal(t, delivery.EffectSuspendOrders, effect)
		assert.Equal(t, delivery.ALiberar, d.Status())
	})

	t.Run("re-approval after suspension keeps the first startedAt", func(t *testing.T) {
		d := newTestDelivery(t, false)
		first := *d.StartedAt()
		_, err := d.RecordApproval(approvalFor(t, d, delivery.ActionReapprovalNeeded, t0.Add(time.Hour)))
		require.NoError(t, err)

		_, err = d.RecordApproval(approvalFor(t, d, delivery.ActionApproved, t0.Add(2*time.Hour)))

		require.NoError(t, err)
		assert.Equal(t, delivery.Iniciado, d.Status())
		assert.Equal(t, first, *d.StartedAt())
		assert.Len(t, d.Approvals(), 2)
	})

	t.Run("approving an already active delivery is a no-op", func(t *testing.T) {
		d := newTestDelivery(t, false)
		startedAt := *d.StartedAt()

		effect, err := d.RecordApproval(approvalFor(t, d, delivery.ActionApproved, t0.Add(time.Hour)))

		require.NoError(t, err)
		assert.Equal(t, delivery.EffectNone, effect)
		assert.Equal(t, delivery.Iniciado, d.Status())
		assert.Equal(t, startedAt, *d.StartedAt())
		assert.Empty(t, d.Approvals(), "a retried release appends no record")
	})

	t.Run("rejecting an active delivery conflicts", func(t *testing.T) {
		d := newTestDelivery(t, false)

		_, err := d.RecordApproval(approvalFor(t, d, delivery.ActionRejected, t0.Add(time.Hour)))

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("re-approval on a pending delivery conflicts", func(t *testing.T) {
		d := newTestDelivery(t, true)

		_, err := d.RecordApproval(approvalFor(t, d, delivery.ActionReapprovalNeeded, t0.Add(time.Hour)))

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("approval for another delivery is rejected", func(t *testing.T) {
		d := newTestDelivery(t, true)
		other := newTestDelivery(t, true)

		_, err := d.RecordApproval(approvalFor(t, other, delivery.ActionApproved, t0))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_Finalize(t *testing.T) {
	t.Run("finalizes an active delivery", func(t *testing.T) {
		d := newTestDelivery(t, false)
		t3 := t0.Add(3 * time.Hour)

		require.NoError(t, d.Finalize(t3))

		assert.Equal(t, delivery.Finalizado, d.Status())
		require.NotNil(t, d.FinishedAt())
		assert.Equal(t, t3, *d.FinishedAt())
	})

	t.Run("cannot finalize a pending delivery", func(t *testing.T) {
		d := newTestDelivery(t, true)

		err := d.Finalize(t0)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("cannot finalize twice", func(t *testing.T) {
		d := newTestDelivery(t, false)
		require.NoError(t, d.Finalize(t0.Add(time.Hour)))

		err := d.Finalize(t0.Add(2 * time.Hour))

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestStatus(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		assert.Equal(t, "A_LIBERAR", delivery.ALiberar.String())
		assert.Equal(t, "INICIADO", delivery.Iniciado.String())
		assert.Equal(t, "FINALIZADO", delivery.Finalizado.String())
		assert.Equal(t, "REJEITADO", delivery.Rejeitado.String())
		assert.Equal(t, "UNKNOWN", delivery.Status(77).String())
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, delivery.Finalizado.IsTerminal())
		assert.True(t, delivery.Rejeitado.IsTerminal())
		assert.False(t, delivery.ALiberar.IsTerminal())
		assert.False(t, delivery.Iniciado.IsTerminal())
	})

	t.Run("validate", func(t *testing.T) {
		require.Error(t, delivery.StatusUnknown.Validate())
		require.NoError(t, delivery.ALiberar.Validate())
	})
}

func TestNewApproval(t *testing.T) {
	t.Run("creates an immutable record", func(t *testing.T) {
		deliveryID, actorID := kernel.NewUUID(), kernel.NewUUID()

		a, err := delivery.NewApproval(kernel.NewUUID(), deliveryID, delivery.ActionApproved, "ok", actorID, t0)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.DeliveryID().IsEqual(deliveryID))
		assert.True(t, a.ActorID().IsEqual(actorID))
		assert.Equal(t, "ok", a.Reason())
		assert.Equal(t, t0, a.CreatedAt())
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		_, err := delivery.NewApproval(
			kernel.NewUUID(), kernel.NewUUID(), delivery.ActionUnknown, "", kernel.NewUUID(), t0,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var a delivery.Approval
		assert.Equal(t, delivery.ErrApprovalIsNotConstructed, a.Validate())
	})
}
