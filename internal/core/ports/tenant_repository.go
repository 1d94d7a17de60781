package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"
)

// TenantRepository reads the tenant configuration the core consumes from the
// administration collaborator. The core never writes through this port.
type TenantRepository interface {
	// GetSettings retrieves the tenant's freight and approval
	// configuration. Fails with an ObjectNotFoundError when the tenant has
	// no settings record.
	GetSettings(ctx context.Context, tenantID kernel.UUID) (*tenant.Settings, error)

	// GetDirections retrieves the tenant's postal-code direction ranges.
	// An empty slice is not an error; orders without a matching direction
	// simply contribute no surcharge.
	GetDirections(ctx context.Context, tenantID kernel.UUID) ([]tenant.Direction, error)
}

// VehicleRepository reads vehicle and category records.
type VehicleRepository interface {
	// GetForTenant retrieves a vehicle with its pricing category within
	// the tenant's scope. Fails with an ObjectNotFoundError when the
	// vehicle or its category is missing.
	GetForTenant(ctx context.Context, tenantID, vehicleID kernel.UUID) (*tenant.Vehicle, error)
}
