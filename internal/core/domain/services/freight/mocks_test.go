package freight_test

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/mock"
)

type MockTenantRepository struct{ mock.Mock }

func (m *MockTenantRepository) GetSettings(ctx context.Context, tenantID kernel.UUID) (*tenant.Settings, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Settings), args.Error(1)
}

func (m *MockTenantRepository) GetDirections(ctx context.Context, tenantID kernel.UUID) ([]tenant.Direction, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenant.Direction), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) GetForTenant(ctx context.Context, tenantID, vehicleID kernel.UUID) (*tenant.Vehicle, error) {
	args := m.Called(ctx, tenantID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Vehicle), args.Error(1)
}

type MockRouteEstimator struct{ mock.Mock }

func (m *MockRouteEstimator) EstimateRouteKm(ctx context.Context, tenantID kernel.UUID, orders []*order.Order) (float64, error) {
	args := m.Called(ctx, tenantID, orders)
	return args.Get(0).(float64), args.Error(1)
}
