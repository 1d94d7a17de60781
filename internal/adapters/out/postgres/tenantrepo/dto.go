// Package tenantrepo provides read-only access to tenant configuration.
// Settings and directions are written by the administration system; the back
// office core only consumes them, so this package has no write path.
package tenantrepo

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// SettingsDTO represents the database structure for tenant freight and
// approval configuration. Nullable columns mean "not configured": a missing
// price fails the calculator that needs it, a missing threshold is simply
// not enforced.
type SettingsDTO struct {
	TenantID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FreightType       string    `gorm:"type:varchar(32);not null"`
	PricePerDelivery  *float64
	PricePerKm        *float64
	MaxFreightPercent *float64
	MinOrderValue     *float64
	MinWeight         *float64
	MinOrderCount     *int
}

// TableName specifies the database table name for tenant settings.
func (SettingsDTO) TableName() string {
	return "tenant_settings"
}

// DirectionDTO represents a tenant-configured postal-code range with its
// surcharge value.
type DirectionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	RangeStart int       `gorm:"not null"`
	RangeEnd   int       `gorm:"not null"`
	Value      float64   `gorm:"not null"`
}

// TableName specifies the database table name for direction entities.
func (DirectionDTO) TableName() string {
	return "directions"
}

// settingsToDomain converts a settings DTO to the domain configuration value.
func settingsToDomain(dto SettingsDTO) (*tenant.Settings, error) {
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var pricePerDelivery *kernel.Money
	if dto.PricePerDelivery != nil {
		m, moneyErr := kernel.NewMoney(*dto.PricePerDelivery)
		if moneyErr != nil {
			return nil, moneyErr
		}
		pricePerDelivery = &m
	}

	var pricePerKm *kernel.Money
	if dto.PricePerKm != nil {
		m, moneyErr := kernel.NewMoney(*dto.PricePerKm)
		if moneyErr != nil {
			return nil, moneyErr
		}
		pricePerKm = &m
	}

	var minOrderValue *kernel.Money
	if dto.MinOrderValue != nil {
		m, moneyErr := kernel.NewMoney(*dto.MinOrderValue)
		if moneyErr != nil {
			return nil, moneyErr
		}
		minOrderValue = &m
	}

	return &tenant.Settings{
		TenantID:         tenantID,
		FreightType:      freightTypeFromString(dto.FreightType),
		PricePerDelivery: pricePerDelivery,
		PricePerKm:       pricePerKm,
		Thresholds: tenant.Thresholds{
			MaxFreightPercent: dto.MaxFreightPercent,
			MinOrderValue:     minOrderValue,
			MinWeight:         dto.MinWeight,
			MinOrderCount:     dto.MinOrderCount,
		},
	}, nil
}

// directionToDomain converts a direction DTO to the domain value.
func directionToDomain(dto DirectionDTO) (tenant.Direction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return tenant.Direction{}, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return tenant.Direction{}, err
	}

	value, err := kernel.NewMoney(dto.Value)
	if err != nil {
		return tenant.Direction{}, err
	}

	return tenant.Direction{
		ID:         id,
		TenantID:   tenantID,
		Name:       dto.Name,
		RangeStart: dto.RangeStart,
		RangeEnd:   dto.RangeEnd,
		Value:      value,
	}, nil
}

// freightTypeFromString maps the persisted strategy name back to the enum.
// An unrecognized name maps to FreightTypeUnknown, which the freight selector
// rejects as an unsupported configuration.
func freightTypeFromString(s string) tenant.FreightType {
	switch s {
	case tenant.FreightDirectionCategory.String():
		return tenant.FreightDirectionCategory
	case tenant.FreightDirectionDeliveryFee.String():
		return tenant.FreightDirectionDeliveryFee
	case tenant.FreightDistance.String():
		return tenant.FreightDistance
	default:
		return tenant.FreightTypeUnknown
	}
}
