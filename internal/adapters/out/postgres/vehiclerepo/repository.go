package vehiclerepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// GetForTenant retrieves a vehicle with its pricing category within the
// tenant's scope. A vehicle without a category record is treated the same as
// a missing vehicle: the direction-category strategy cannot price it.
func (r *GormVehicleRepository) GetForTenant(ctx context.Context, tenantID, vehicleID kernel.UUID) (*tenant.Vehicle, error) {
	if err := errors.Join(tenantID.Validate(), vehicleID.Validate()); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.Bytes(), vehicleID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", vehicleID.String())
		}
		return nil, err
	}

	var categoryDTO CategoryDTO
	err = r.db.WithContext(ctx).First(&categoryDTO, "id = ?", dto.CategoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleCategory", vehicleID.String())
		}
		return nil, err
	}

	return toDomain(dto, categoryDTO)
}
