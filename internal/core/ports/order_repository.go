package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only delivery proofs. All reads are tenant-scoped where a
// tenant id is taken; an order outside the tenant's scope surfaces as an
// ObjectNotFoundError, never as an authorization error.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The UPDATE is guarded
	// on the aggregate's baseline status: when a concurrent transition
	// already changed the row, Update fails with a StateConflictError and
	// writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForTenant retrieves an order by id within the tenant's scope.
	GetForTenant(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// GetAllForTenantByIDs retrieves the given orders within the tenant's
	// scope. It fails with an ObjectNotFoundError naming the first missing
	// id when any of them is absent.
	GetAllForTenantByIDs(ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID) ([]*order.Order, error)

	// GetByDelivery retrieves every order currently attached to the
	// delivery, ordered by sort index.
	GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*order.Order, error)

	// AddProof appends an immutable delivery proof record.
	AddProof(ctx context.Context, proof order.DeliveryProof) error

	// GetProofsByOrder retrieves the order's proofs in ascending creation
	// order.
	GetProofsByOrder(ctx context.Context, orderID kernel.UUID) ([]order.DeliveryProof, error)
}
