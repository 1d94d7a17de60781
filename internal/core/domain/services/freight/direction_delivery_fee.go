package freight

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// DirectionDeliveryFeeCalculator prices a batch as the single most expensive
// matching direction plus a flat per-delivery fee charged for every order.
//
// Business rules:
//   - The direction surcharge is charged once per batch, never per order
//   - The per-delivery fee is charged per order in the batch
//   - A missing per-delivery fee in the tenant's settings is a
//     configuration error, not a zero fee
type DirectionDeliveryFeeCalculator struct {
	tenants ports.TenantRepository
}

// NewDirectionDeliveryFeeCalculator creates the direction-plus-fee strategy.
func NewDirectionDeliveryFeeCalculator(tenants ports.TenantRepository) DirectionDeliveryFeeCalculator {
	return DirectionDeliveryFeeCalculator{tenants: tenants}
}

// Calculate returns max(direction value over the batch) + order count * fee.
func (c DirectionDeliveryFeeCalculator) Calculate(ctx context.Context, orders []*order.Order, _, tenantID kernel.UUID) (kernel.Money, error) {
	settings, err := c.tenants.GetSettings(ctx, tenantID)
	if err != nil {
		return kernel.Money{}, err
	}

	if settings.PricePerDelivery == nil {
		return kernel.Money{}, errs.NewConfigurationMissingError("pricePerDelivery", tenantID.String())
	}

	directions, err := c.tenants.GetDirections(ctx, tenantID)
	if err != nil {
		return kernel.Money{}, err
	}

	fee := settings.PricePerDelivery.MulInt(len(orders))
	return maxDirectionValue(orders, directions).Add(fee), nil
}
