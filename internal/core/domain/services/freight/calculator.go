package freight

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/tenant"
)

// Calculator computes the freight cost for a batch of orders about to be
// grouped into one delivery.
//
// Implementations are strategies selected per tenant by the Selector. Every
// strategy receives the full batch at once so that batch-level rules, such as
// charging the most expensive direction only once, stay inside the strategy.
type Calculator interface {
	// Calculate returns the freight cost for the batch.
	//
	// Parameters:
	//   - ctx: Context for external lookups (directions, vehicles, routes)
	//   - orders: The batch of orders forming the delivery
	//   - vehicleID: The vehicle assigned to the delivery
	//   - tenantID: The tenant owning the orders
	//
	// Returns:
	//   - kernel.Money: The computed freight, rounded to cents
	//   - error: ConfigurationMissingError when the tenant's settings lack a
	//     price the strategy requires, or lookup failures
	Calculate(ctx context.Context, orders []*order.Order, vehicleID, tenantID kernel.UUID) (kernel.Money, error)
}

// maxDirectionValue returns the value of the most expensive direction matched
// by any order in the batch. Orders whose postal code falls in no range
// contribute nothing; a batch with no matches at all yields zero.
func maxDirectionValue(orders []*order.Order, directions []tenant.Direction) kernel.Money {
	var best kernel.Money

	for _, o := range orders {
		for _, d := range directions {
			if !d.Matches(o.PostalCode()) {
				continue
			}

			if d.Value.GreaterThan(best) {
				best = d.Value
			}
		}
	}

	return best
}
