package freight

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// DistanceCalculator prices a batch as the estimated route distance in
// kilometers times the tenant's per-kilometer rate. The distance comes from
// the external route estimator; this strategy only applies the pricing
// formula to whatever distance it is given.
type DistanceCalculator struct {
	tenants ports.TenantRepository
	routes  ports.RouteEstimator
}

// NewDistanceCalculator creates the distance-based strategy.
func NewDistanceCalculator(tenants ports.TenantRepository, routes ports.RouteEstimator) DistanceCalculator {
	return DistanceCalculator{tenants: tenants, routes: routes}
}

// Calculate returns route kilometers * price per kilometer, rounded to cents.
func (c DistanceCalculator) Calculate(ctx context.Context, orders []*order.Order, _, tenantID kernel.UUID) (kernel.Money, error) {
	settings, err := c.tenants.GetSettings(ctx, tenantID)
	if err != nil {
		return kernel.Money{}, err
	}

	if settings.PricePerKm == nil {
		return kernel.Money{}, errs.NewConfigurationMissingError("pricePerKm", tenantID.String())
	}

	km, err := c.routes.EstimateRouteKm(ctx, tenantID, orders)
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(km * settings.PricePerKm.Float64())
}
