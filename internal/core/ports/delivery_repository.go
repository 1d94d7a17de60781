package ports

import (
	"context"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates and their append-only approval records.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery. The UPDATE is
	// guarded on the aggregate's baseline status so that of two racing
	// transitions exactly one wins; the loser receives a
	// StateConflictError.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// AddApproval appends an immutable approval record.
	AddApproval(ctx context.Context, approval delivery.Approval) error

	// GetForTenant retrieves a delivery by id within the tenant's scope,
	// including its approval history in ascending creation order.
	GetForTenant(ctx context.Context, tenantID, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllInStatus retrieves every delivery currently in the given
	// status, across tenants. Used by the finalization sweep.
	GetAllInStatus(ctx context.Context, status delivery.Status) ([]*delivery.Delivery, error)
}
