package queries_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderHistoryQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	tenantID := kernel.NewUUID()

	query, err := queries.NewGetOrderHistoryQuery(orderID, tenantID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
	assert.True(t, query.TenantID().IsEqual(tenantID))
}

func TestNewGetOrderHistoryQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewGetOrderHistoryQuery_EmptyTenantID(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}
