package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves a tenant's deliveries waiting for a
// supervisor's release, for the approval work queue screen.
type GetPendingDeliveriesQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query for the approval work queue.
func NewGetPendingDeliveriesQuery(tenantID kernel.UUID) (GetPendingDeliveriesQuery, error) {
	query := GetPendingDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTenantID(tenantID); err != nil {
		return GetPendingDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// TenantID returns the tenant whose queue is requested.
func (q GetPendingDeliveriesQuery) TenantID() kernel.UUID {
	return q.tenantID
}

func (q *GetPendingDeliveriesQuery) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	q.tenantID = tenantID
	return nil
}

// GetPendingDeliveriesQueryResponse is one row of the approval work queue.
type GetPendingDeliveriesQueryResponse struct {
	ID          kernel.UUID
	DriverID    kernel.UUID
	VehicleID   kernel.UUID
	Freight     float64
	Observation string
	CreatedAt   time.Time
}
