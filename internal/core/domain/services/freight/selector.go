package freight

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// Selector resolves the freight strategy configured for a tenant.
//
// The tenant's settings are read on every call, so a configuration change
// takes effect on the next delivery without a restart.
type Selector struct {
	tenants  ports.TenantRepository
	vehicles ports.VehicleRepository
	routes   ports.RouteEstimator
}

// NewSelector creates a Selector wired to the collaborator repositories the
// individual strategies need.
func NewSelector(tenants ports.TenantRepository, vehicles ports.VehicleRepository, routes ports.RouteEstimator) Selector {
	return Selector{tenants: tenants, vehicles: vehicles, routes: routes}
}

// Select returns the Calculator matching the tenant's configured freight
// type.
//
// Returns:
//   - Calculator: The strategy to price the tenant's deliveries with
//   - error: UnsupportedConfigurationError when the configured type is
//     missing or not one of the known strategies, or settings lookup failures
func (s Selector) Select(ctx context.Context, tenantID kernel.UUID) (Calculator, error) {
	settings, err := s.tenants.GetSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	switch settings.FreightType {
	case tenant.FreightDirectionCategory:
		return NewDirectionCategoryCalculator(s.tenants, s.vehicles), nil
	case tenant.FreightDirectionDeliveryFee:
		return NewDirectionDeliveryFeeCalculator(s.tenants), nil
	case tenant.FreightDistance:
		return NewDistanceCalculator(s.tenants, s.routes), nil
	default:
		return nil, errs.NewUnsupportedConfigurationError("freightType", settings.FreightType.String())
	}
}
