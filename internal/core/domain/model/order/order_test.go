package order_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"PED-0001",
		12.5,
		kernel.MustMoney(300),
		4510020,
		1,
		t0,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in SEM_ROTA", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.SemRota, o.Status())
		assert.Equal(t, order.SemRota, o.BaselineStatus())
		assert.Nil(t, o.DeliveryID())
		assert.Nil(t, o.DriverID())
		assert.Equal(t, t0, o.CreatedAt())
		assert.Equal(t, t0, o.UpdatedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		tenantID := kernel.NewUUID()

		_, err := order.NewOrder(kernel.UUID{}, tenantID, "PED-1", 1, kernel.Money{}, 1000, 0, t0)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, "PED-1", 1, kernel.Money{}, 1000, 0, t0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), tenantID, "", 1, kernel.Money{}, 1000, 0, t0)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), tenantID, "PED-1", -2, kernel.Money{}, 1000, 0, t0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(kernel.NewUUID(), tenantID, "PED-1", 1, kernel.Money{}, 0, 0, t0)
		require.Error(t, err)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())

		assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	})
}

func TestOrder_AssignToDelivery(t *testing.T) {
	t.Run("pending approval moves to EM_ROTA_AGUARDANDO_LIBERACAO", func(t *testing.T) {
		o := newTestOrder(t)
		deliveryID, driverID := kernel.NewUUID(), kernel.NewUUID()
		t1 := t0.Add(time.Hour)

		require.NoError(t, o.AssignToDelivery(deliveryID, driverID, true, t1))

		assert.Equal(t, order.EmRotaAguardandoLiberacao, o.Status())
		assert.True(t, o.DeliveryID().IsEqual(deliveryID))
		assert.True(t, o.DriverID().IsEqual(driverID))
		assert.Equal(t, t1, o.UpdatedAt())
	})

	t.Run("without approval moves directly to EM_ROTA", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0.Add(time.Hour)))

		assert.Equal(t, order.EmRota, o.Status())
	})

	t.Run("assigning an already assigned order conflicts", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0))

		err := o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "EM_ROTA")
	})
}

func TestOrder_ReleaseAndSuspend(t *testing.T) {
	t.Run("release after approval", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), true, t0))

		require.NoError(t, o.ReleaseForDelivery(t0.Add(time.Hour)))

		assert.Equal(t, order.EmRota, o.Status())
	})

	t.Run("suspend for re-approval", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0))

		require.NoError(t, o.SuspendForReapproval(t0.Add(time.Hour)))

		assert.Equal(t, order.EmRotaAguardandoLiberacao, o.Status())
	})

	t.Run("release of an unassigned order conflicts", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ReleaseForDelivery(t0)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("suspend of an unassigned order conflicts", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SuspendForReapproval(t0)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_Unassign(t *testing.T) {
	t.Run("rejection releases the order and clears the driver", func(t *testing.T) {
		o := newTestOrder(t)
		deliveryID := kernel.NewUUID()
		require.NoError(t, o.AssignToDelivery(deliveryID, kernel.NewUUID(), true, t0))

		require.NoError(t, o.Unassign(t0.Add(time.Hour)))

		assert.Equal(t, order.SemRota, o.Status())
		assert.Nil(t, o.DriverID())
		// the delivery reference stays for history reconstruction
		require.NotNil(t, o.DeliveryID())
		assert.True(t, deliveryID.IsEqual(*o.DeliveryID()))
	})

	t.Run("cannot unassign a released order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0))

		err := o.Unassign(t0)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_Start(t *testing.T) {
	t.Run("moves to EM_ENTREGA and sets startedAt once", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), driverID, false, t0))
		t2 := t0.Add(2 * time.Hour)

		require.NoError(t, o.Start(driverID, t2))

		assert.Equal(t, order.EmEntrega, o.Status())
		require.NotNil(t, o.StartedAt())
		assert.Equal(t, t2, *o.StartedAt())
	})

	t.Run("is idempotent", func(t *testing.T) {
		o := newTestOrder(t)
		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), driverID, false, t0))
		t2 := t0.Add(2 * time.Hour)
		require.NoError(t, o.Start(driverID, t2))

		require.NoError(t, o.Start(driverID, t2.Add(time.Minute)))

		assert.Equal(t, t2, *o.StartedAt(), "startedAt must not change on repeat")
		assert.Equal(t, order.EmEntrega, o.Status())
	})

	t.Run("cannot start an order awaiting release", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), true, t0))

		err := o.Start(kernel.NewUUID(), t0)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_Complete(t *testing.T) {
	startedOrder := func(t *testing.T) *order.Order {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0))
		require.NoError(t, o.Start(kernel.NewUUID(), t0.Add(time.Hour)))
		return o
	}

	t.Run("successful delivery", func(t *testing.T) {
		o := startedOrder(t)
		t3 := t0.Add(3 * time.Hour)

		require.NoError(t, o.Complete(true, nil, nil, t3))

		assert.Equal(t, order.Entregue, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, t3, *o.CompletedAt())
		assert.Nil(t, o.FailureReason())
	})

	t.Run("failed delivery records reason and code", func(t *testing.T) {
		o := startedOrder(t)
		reason := "Destinatário ausente"
		code := "AUSENTE"

		require.NoError(t, o.Complete(false, &reason, &code, t0.Add(3*time.Hour)))

		assert.Equal(t, order.NaoEntregue, o.Status())
		require.NotNil(t, o.FailureReason())
		assert.Equal(t, reason, *o.FailureReason())
		require.NotNil(t, o.FailureCode())
		assert.Equal(t, code, *o.FailureCode())
	})

	t.Run("failure without reason is rejected", func(t *testing.T) {
		o := startedOrder(t)

		err := o.Complete(false, nil, nil, t0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.EmEntrega, o.Status(), "status must be unchanged")
	})

	t.Run("completing twice conflicts", func(t *testing.T) {
		o := startedOrder(t)
		require.NoError(t, o.Complete(true, nil, nil, t0.Add(3*time.Hour)))

		err := o.Complete(true, nil, nil, t0.Add(4*time.Hour))

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("cannot complete an order that was never started", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignToDelivery(kernel.NewUUID(), kernel.NewUUID(), false, t0))

		err := o.Complete(true, nil, nil, t0)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestNewDeliveryProof(t *testing.T) {
	t.Run("creates an immutable proof record", func(t *testing.T) {
		p, err := order.NewDeliveryProof(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"https://cdn.example.com/proofs/1.jpg", t0,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "https://cdn.example.com/proofs/1.jpg", p.URL())
		assert.Equal(t, t0, p.CreatedAt())
	})

	t.Run("requires a URL", func(t *testing.T) {
		_, err := order.NewDeliveryProof(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", t0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var p order.DeliveryProof
		require.Error(t, p.Validate())
	})
}
