package commands_test

import (
	"fmt"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newStoredOrder(t *testing.T, tenantID kernel.UUID, n int) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), tenantID, fmt.Sprintf("PED-%04d", n),
		10, kernel.MustMoney(200), 4510020, n, t0)
	require.NoError(t, err)
	return o
}

func newStoredDelivery(t *testing.T, tenantID kernel.UUID, pending bool) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(kernel.NewUUID(), tenantID, kernel.NewUUID(),
		kernel.NewUUID(), kernel.MustMoney(45), "", pending, t0)
	require.NoError(t, err)
	return d
}

func assignedOrder(t *testing.T, tenantID kernel.UUID, d *delivery.Delivery, n int, pending bool) *order.Order {
	t.Helper()

	o := newStoredOrder(t, tenantID, n)
	require.NoError(t, o.AssignToDelivery(d.ID(), d.DriverID(), pending, t0))
	return o
}

func startedOrder(t *testing.T, tenantID kernel.UUID, d *delivery.Delivery, n int) *order.Order {
	t.Helper()

	o := assignedOrder(t, tenantID, d, n, false)
	require.NoError(t, o.Start(d.DriverID(), t0.Add(time.Hour)))
	return o
}

func completedOrder(t *testing.T, tenantID kernel.UUID, d *delivery.Delivery, n int) *order.Order {
	t.Helper()

	o := startedOrder(t, tenantID, d, n)
	require.NoError(t, o.Complete(true, nil, nil, t0.Add(2*time.Hour)))
	return o
}
