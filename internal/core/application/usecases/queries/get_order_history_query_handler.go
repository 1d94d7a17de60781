package queries

import (
	"context"

	"backoffice/internal/core/domain/services/history"
	"backoffice/internal/core/ports"
)

// GetOrderHistoryQueryHandler rebuilds an order's audit trail on demand.
//
// The read is tenant-scoped: an order outside the caller's tenant is
// indistinguishable from a missing one. The handler only gathers the rows;
// the derivation itself is the pure history.Reconstruct function, so two
// reads over unchanged rows return identical sequences.
type GetOrderHistoryQueryHandler struct {
	orders     ports.OrderRepository
	deliveries ports.DeliveryRepository
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail reads.
func NewGetOrderHistoryQueryHandler(
	orders ports.OrderRepository,
	deliveries ports.DeliveryRepository,
) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{
		orders:     orders,
		deliveries: deliveries,
	}
}

// Handle loads the order, its linked delivery and its proofs, and returns
// the reconstructed event sequence.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]history.Event, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.GetForTenant(ctx, query.TenantID(), query.OrderID())
	if err != nil {
		return nil, err
	}

	proofs, err := h.orders.GetProofsByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	if o.DeliveryID() == nil {
		return history.Reconstruct(o, nil, proofs), nil
	}

	linked, err := h.deliveries.GetForTenant(ctx, query.TenantID(), *o.DeliveryID())
	if err != nil {
		return nil, err
	}

	return history.Reconstruct(o, linked, proofs), nil
}
