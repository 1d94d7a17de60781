package freight

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// DirectionCategoryCalculator prices a batch as the single most expensive
// matching direction plus the assigned vehicle's category value.
//
// Business rules:
//   - The direction surcharge is charged once per batch, never per order
//   - Orders matching no direction contribute no surcharge
//   - A batch with no matches still pays the vehicle category value
type DirectionCategoryCalculator struct {
	tenants  ports.TenantRepository
	vehicles ports.VehicleRepository
}

// NewDirectionCategoryCalculator creates the direction-plus-category strategy.
func NewDirectionCategoryCalculator(tenants ports.TenantRepository, vehicles ports.VehicleRepository) DirectionCategoryCalculator {
	return DirectionCategoryCalculator{tenants: tenants, vehicles: vehicles}
}

// Calculate returns max(direction value over the batch) + vehicle category value.
func (c DirectionCategoryCalculator) Calculate(ctx context.Context, orders []*order.Order, vehicleID, tenantID kernel.UUID) (kernel.Money, error) {
	directions, err := c.tenants.GetDirections(ctx, tenantID)
	if err != nil {
		return kernel.Money{}, err
	}

	vehicle, err := c.vehicles.GetForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return kernel.Money{}, err
	}

	return maxDirectionValue(orders, directions).Add(vehicle.Category.Value), nil
}
