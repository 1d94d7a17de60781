package orderrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. The UPDATE is guarded on
// the status the aggregate was loaded with, so when a concurrent transition
// already moved the row the write matches nothing and the caller gets a
// StateConflictError instead of silently overwriting the winner.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.BaselineStatus())).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError(
			"order", aggregate.ID().String(),
			aggregate.BaselineStatus().String(), aggregate.Status().String(),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForTenant retrieves an order by ID within the tenant's scope.
func (r *GormOrderRepository) GetForTenant(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForTenantByIDs retrieves the given orders within the tenant's scope.
// Fails with an ObjectNotFoundError naming the first missing ID, so a batch
// request with a stale order reference produces an actionable message.
// Results are returned in the requested order.
func (r *GormOrderRepository) GetAllForTenantByIDs(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) ([]*order.Order, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "tenant_id = ? AND id IN ?", tenantID.Bytes(), raw).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		byID[o.ID()] = o
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetByDelivery retrieves every order currently attached to the delivery,
// ordered by sort index. Orders released back to SEM_ROTA keep the delivery
// reference for the audit trail but are no longer part of the route, so they
// are excluded here.
func (r *GormOrderRepository) GetByDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*order.Order, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("sort_index").
		Find(&dtos, "delivery_id = ? AND status <> ?", deliveryID.Bytes(), int(order.SemRota)).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// AddProof appends an immutable delivery proof record.
func (r *GormOrderRepository) AddProof(ctx context.Context, proof order.DeliveryProof) error {
	if err := proof.Validate(); err != nil {
		return err
	}

	dto := proofFromDomain(proof)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetProofsByOrder retrieves the order's proofs in ascending creation order.
func (r *GormOrderRepository) GetProofsByOrder(ctx context.Context, orderID kernel.UUID) ([]order.DeliveryProof, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProofDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	proofs := make([]order.DeliveryProof, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := proofToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		proofs = append(proofs, p)
	}

	return proofs, nil
}
