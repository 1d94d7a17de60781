package tenant

import (
	"backoffice/internal/core/domain/model/kernel"
)

// VehicleCategory is a pricing category: vehicles of the same category add
// the same flat value to direction-based freight.
type VehicleCategory struct {
	ID    kernel.UUID
	Name  string
	Value kernel.Money
}

// Vehicle is a tenant's vehicle together with its pricing category.
type Vehicle struct {
	ID       kernel.UUID
	TenantID kernel.UUID
	Plate    string
	Category VehicleCategory
}
