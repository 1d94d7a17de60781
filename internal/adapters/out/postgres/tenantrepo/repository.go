package tenantrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM.
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// GetSettings retrieves the tenant's freight and approval configuration.
func (r *GormTenantRepository) GetSettings(ctx context.Context, tenantID kernel.UUID) (*tenant.Settings, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "tenant_id = ?", tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenantSettings", tenantID.String())
		}
		return nil, err
	}

	return settingsToDomain(dto)
}

// GetDirections retrieves the tenant's postal-code direction ranges.
// An empty result is not an error.
func (r *GormTenantRepository) GetDirections(ctx context.Context, tenantID kernel.UUID) ([]tenant.Direction, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DirectionDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "tenant_id = ?", tenantID.Bytes()).Error; err != nil {
		return nil, err
	}

	directions := make([]tenant.Direction, 0, len(dtos))
	for _, dto := range dtos {
		d, convErr := directionToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		directions = append(directions, d)
	}

	return directions, nil
}
