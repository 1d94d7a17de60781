package deliveryrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database. The UPDATE is guarded on
// the status the aggregate was loaded with, so of two racing decisions the
// second one matches nothing and gets a StateConflictError.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.BaselineStatus())).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError(
			"delivery", aggregate.ID().String(),
			aggregate.BaselineStatus().String(), aggregate.Status().String(),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddApproval appends an immutable approval record.
func (r *GormDeliveryRepository) AddApproval(ctx context.Context, approval delivery.Approval) error {
	if err := approval.Validate(); err != nil {
		return err
	}

	dto := approvalFromDomain(approval)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetForTenant retrieves a delivery by ID within the tenant's scope,
// including its approval history in ascending creation order.
func (r *GormDeliveryRepository) GetForTenant(ctx context.Context, tenantID, id kernel.UUID) (*delivery.Delivery, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	approvals, err := r.getApprovals(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, approvals)
}

// GetAllInStatus retrieves every delivery currently in the given status,
// across tenants. The finalization sweep uses it to find active routes.
func (r *GormDeliveryRepository) GetAllInStatus(
	ctx context.Context,
	status delivery.Status,
) ([]*delivery.Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		approvals, err := r.getApprovals(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		d, err := toDomain(dto, approvals)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func (r *GormDeliveryRepository) getApprovals(ctx context.Context, deliveryID any) ([]ApprovalDTO, error) {
	var dtos []ApprovalDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "delivery_id = ?", deliveryID).Error
	if err != nil {
		return nil, err
	}
	return dtos, nil
}
