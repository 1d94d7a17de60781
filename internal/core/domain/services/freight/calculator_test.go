package freight_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/tenant"
	"backoffice/internal/core/domain/services/freight"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newBatchOrder(t *testing.T, tenantID kernel.UUID, n int, postalCode int) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		tenantID,
		fmt.Sprintf("PED-%04d", n),
		10,
		kernel.MustMoney(100),
		postalCode,
		n,
		t0,
	)
	require.NoError(t, err)
	return o
}

func newDirection(tenantID kernel.UUID, start, end int, value float64) tenant.Direction {
	return tenant.Direction{
		ID:         kernel.NewUUID(),
		TenantID:   tenantID,
		Name:       fmt.Sprintf("Zona %d-%d", start, end),
		RangeStart: start,
		RangeEnd:   end,
		Value:      kernel.MustMoney(value),
	}
}

func TestDirectionCategoryCalculator_ChargesMaxDirectionOnce(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	orders := []*order.Order{
		newBatchOrder(t, tenantID, 1, 4510020),
		newBatchOrder(t, tenantID, 2, 4520000),
		newBatchOrder(t, tenantID, 3, 9000000), // no matching direction
	}
	directions := []tenant.Direction{
		newDirection(tenantID, 4500000, 4515000, 30),
		newDirection(tenantID, 4515001, 4530000, 50),
	}
	vehicle := &tenant.Vehicle{
		ID:       vehicleID,
		TenantID: tenantID,
		Plate:    "ABC1D23",
		Category: tenant.VehicleCategory{ID: kernel.NewUUID(), Name: "Truck", Value: kernel.MustMoney(120)},
	}

	tenants := new(MockTenantRepository)
	vehicles := new(MockVehicleRepository)
	tenants.On("GetDirections", ctx, tenantID).Return(directions, nil).Once()
	vehicles.On("GetForTenant", ctx, tenantID, vehicleID).Return(vehicle, nil).Once()

	calc := freight.NewDirectionCategoryCalculator(tenants, vehicles)
	got, err := calc.Calculate(ctx, orders, vehicleID, tenantID)

	require.NoError(t, err)
	// 50 (highest matched direction, charged once) + 120 (category)
	assert.Equal(t, kernel.MustMoney(170), got)
	tenants.AssertExpectations(t)
	vehicles.AssertExpectations(t)
}

func TestDirectionCategoryCalculator_NoMatchingDirection(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	orders := []*order.Order{newBatchOrder(t, tenantID, 1, 9000000)}
	vehicle := &tenant.Vehicle{
		ID:       vehicleID,
		TenantID: tenantID,
		Plate:    "ABC1D23",
		Category: tenant.VehicleCategory{ID: kernel.NewUUID(), Name: "Van", Value: kernel.MustMoney(80)},
	}

	tenants := new(MockTenantRepository)
	vehicles := new(MockVehicleRepository)
	tenants.On("GetDirections", ctx, tenantID).Return([]tenant.Direction{
		newDirection(tenantID, 4500000, 4515000, 30),
	}, nil).Once()
	vehicles.On("GetForTenant", ctx, tenantID, vehicleID).Return(vehicle, nil).Once()

	calc := freight.NewDirectionCategoryCalculator(tenants, vehicles)
	got, err := calc.Calculate(ctx, orders, vehicleID, tenantID)

	require.NoError(t, err)
	assert.Equal(t, kernel.MustMoney(80), got)
}

func TestDirectionCategoryCalculator_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	tenants := new(MockTenantRepository)
	vehicles := new(MockVehicleRepository)
	tenants.On("GetDirections", ctx, tenantID).Return([]tenant.Direction{}, nil).Once()
	vehicles.On("GetForTenant", ctx, tenantID, vehicleID).
		Return(nil, errs.NewObjectNotFoundError("vehicleID", vehicleID)).
		Once()

	calc := freight.NewDirectionCategoryCalculator(tenants, vehicles)
	_, err := calc.Calculate(ctx, []*order.Order{newBatchOrder(t, tenantID, 1, 4510020)}, vehicleID, tenantID)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDirectionDeliveryFeeCalculator_FeePerOrder(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()

	orders := []*order.Order{
		newBatchOrder(t, tenantID, 1, 4510020),
		newBatchOrder(t, tenantID, 2, 4510021),
		newBatchOrder(t, tenantID, 3, 4510022),
	}
	fee := kernel.MustMoney(15.5)
	settings := &tenant.Settings{
		TenantID:         tenantID,
		FreightType:      tenant.FreightDirectionDeliveryFee,
		PricePerDelivery: &fee,
	}

	tenants := new(MockTenantRepository)
	tenants.On("GetSettings", ctx, tenantID).Return(settings, nil).Once()
	tenants.On("GetDirections", ctx, tenantID).Return([]tenant.Direction{
		newDirection(tenantID, 4500000, 4515000, 30),
	}, nil).Once()

	calc := freight.NewDirectionDeliveryFeeCalculator(tenants)
	got, err := calc.Calculate(ctx, orders, kernel.NewUUID(), tenantID)

	require.NoError(t, err)
	// 30 (direction, once) + 3 * 15.50
	assert.Equal(t, kernel.MustMoney(76.5), got)
}

func TestDirectionDeliveryFeeCalculator_MissingFee(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	settings := &tenant.Settings{
		TenantID:    tenantID,
		FreightType: tenant.FreightDirectionDeliveryFee,
	}

	tenants := new(MockTenantRepository)
	tenants.On("GetSettings", ctx, tenantID).Return(settings, nil).Once()

	calc := freight.NewDirectionDeliveryFeeCalculator(tenants)
	_, err := calc.Calculate(ctx, []*order.Order{newBatchOrder(t, tenantID, 1, 4510020)}, kernel.NewUUID(), tenantID)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfigurationMissing)
}

func TestDistanceCalculator_PricesByRouteKm(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	orders := []*order.Order{newBatchOrder(t, tenantID, 1, 4510020)}

	perKm := kernel.MustMoney(2.5)
	settings := &tenant.Settings{
		TenantID:    tenantID,
		FreightType: tenant.FreightDistance,
		PricePerKm:  &perKm,
	}

	tenants := new(MockTenantRepository)
	routes := new(MockRouteEstimator)
	tenants.On("GetSettings", ctx, tenantID).Return(settings, nil).Once()
	routes.On("EstimateRouteKm", ctx, tenantID, orders).Return(12.345, nil).Once()

	calc := freight.NewDistanceCalculator(tenants, routes)
	got, err := calc.Calculate(ctx, orders, kernel.NewUUID(), tenantID)

	require.NoError(t, err)
	// 12.345 * 2.50 = 30.8625, rounded to cents
	assert.Equal(t, kernel.MustMoney(30.86), got)
	routes.AssertExpectations(t)
}

func TestDistanceCalculator_MissingPricePerKm(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	settings := &tenant.Settings{TenantID: tenantID, FreightType: tenant.FreightDistance}

	tenants := new(MockTenantRepository)
	routes := new(MockRouteEstimator)
	tenants.On("GetSettings", ctx, tenantID).Return(settings, nil).Once()

	calc := freight.NewDistanceCalculator(tenants, routes)
	_, err := calc.Calculate(ctx, []*order.Order{newBatchOrder(t, tenantID, 1, 4510020)}, kernel.NewUUID(), tenantID)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfigurationMissing)
	routes.AssertNotCalled(t, "EstimateRouteKm")
}

func TestDistanceCalculator_EstimatorError(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	orders := []*order.Order{newBatchOrder(t, tenantID, 1, 4510020)}

	perKm := kernel.MustMoney(2.5)
	settings := &tenant.Settings{TenantID: tenantID, FreightType: tenant.FreightDistance, PricePerKm: &perKm}

	tenants := new(MockTenantRepository)
	routes := new(MockRouteEstimator)
	tenants.On("GetSettings", ctx, tenantID).Return(settings, nil).Once()
	routes.On("EstimateRouteKm", ctx, tenantID, orders).Return(0.0, errors.New("route service unavailable")).Once()

	calc := freight.NewDistanceCalculator(tenants, routes)
	_, err := calc.Calculate(ctx, orders, kernel.NewUUID(), tenantID)

	require.Error(t, err)
	require.EqualError(t, err, "route service unavailable")
}
