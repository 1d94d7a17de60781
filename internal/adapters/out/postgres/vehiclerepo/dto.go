// Package vehiclerepo provides read-only access to vehicle and category
// records. Fleet data is maintained by the administration system; the back
// office core only reads it for freight calculation.
package vehiclerepo

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for vehicle records.
type VehicleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Plate      string    `gorm:"type:varchar(16);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// CategoryDTO represents the database structure for vehicle pricing categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Value float64   `gorm:"not null"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "vehicle_categories"
}

// toDomain converts a vehicle DTO and its category row to the domain value.
func toDomain(dto VehicleDTO, categoryDTO CategoryDTO) (*tenant.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(categoryDTO.ID[:])
	if err != nil {
		return nil, err
	}

	value, err := kernel.NewMoney(categoryDTO.Value)
	if err != nil {
		return nil, err
	}

	return &tenant.Vehicle{
		ID:       id,
		TenantID: tenantID,
		Plate:    dto.Plate,
		Category: tenant.VehicleCategory{
			ID:    categoryID,
			Name:  categoryDTO.Name,
			Value: value,
		},
	}, nil
}
