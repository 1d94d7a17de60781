package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// RouteEstimator is the external geocoding/distance collaborator used by the
// distance-based freight strategy. The core only plugs the returned distance
// into the pricing formula.
type RouteEstimator interface {
	// EstimateRouteKm returns the total route distance in kilometers for
	// visiting the given orders.
	EstimateRouteKm(ctx context.Context, tenantID kernel.UUID, orders []*order.Order) (float64, error)
}
