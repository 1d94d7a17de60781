package freight_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"
	"backoffice/internal/core/domain/services/freight"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Select_KnownTypes(t *testing.T) {
	tests := []struct {
		name        string
		freightType tenant.FreightType
		want        any
	}{
		{"direction plus category", tenant.FreightDirectionCategory, freight.DirectionCategoryCalculator{}},
		{"direction plus delivery fee", tenant.FreightDirectionDeliveryFee, freight.DirectionDeliveryFeeCalculator{}},
		{"distance", tenant.FreightDistance, freight.DistanceCalculator{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			tenantID := kernel.NewUUID()

			tenants := new(MockTenantRepository)
			tenants.On("GetSettings", ctx, tenantID).
				Return(&tenant.Settings{TenantID: tenantID, FreightType: tt.freightType}, nil).
				Once()

			selector := freight.NewSelector(tenants, new(MockVehicleRepository), new(MockRouteEstimator))
			calc, err := selector.Select(ctx, tenantID)

			require.NoError(t, err)
			assert.IsType(t, tt.want, calc)
		})
	}
}

func TestSelector_Select_UnknownType(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()

	tenants := new(MockTenantRepository)
	tenants.On("GetSettings", ctx, tenantID).
		Return(&tenant.Settings{TenantID: tenantID, FreightType: tenant.FreightTypeUnknown}, nil).
		Once()

	selector := freight.NewSelector(tenants, new(MockVehicleRepository), new(MockRouteEstimator))
	calc, err := selector.Select(ctx, tenantID)

	require.Error(t, err)
	assert.Nil(t, calc)
	assert.ErrorIs(t, err, errs.ErrUnsupportedConfiguration)
}

func TestSelector_Select_SettingsNotFound(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()

	tenants := new(MockTenantRepository)
	tenants.On("GetSettings", ctx, tenantID).
		Return(nil, errs.NewObjectNotFoundError("tenantID", tenantID)).
		Once()

	selector := freight.NewSelector(tenants, new(MockVehicleRepository), new(MockRouteEstimator))
	_, err := selector.Select(ctx, tenantID)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSelector_Select_RereadsSettingsEachCall(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()

	tenants := new(MockTenantRepository)
	tenants.On("GetSettings", ctx, tenantID).
		Return(&tenant.Settings{TenantID: tenantID, FreightType: tenant.FreightDistance}, nil).
		Once()
	tenants.On("GetSettings", ctx, tenantID).
		Return(&tenant.Settings{TenantID: tenantID, FreightType: tenant.FreightDirectionCategory}, nil).
		Once()

	selector := freight.NewSelector(tenants, new(MockVehicleRepository), new(MockRouteEstimator))

	first, err := selector.Select(ctx, tenantID)
	require.NoError(t, err)
	assert.IsType(t, freight.DistanceCalculator{}, first)

	second, err := selector.Select(ctx, tenantID)
	require.NoError(t, err)
	assert.IsType(t, freight.DirectionCategoryCalculator{}, second)

	tenants.AssertExpectations(t)
}
