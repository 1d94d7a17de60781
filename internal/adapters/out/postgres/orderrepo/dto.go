// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by tenant, status and delivery membership.
//
// Timestamps are managed by the domain layer, not by GORM: updated_at carries
// the business event time the audit trail reconstruction depends on.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_tenant_number"`
	Number        string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_orders_tenant_number"`
	Weight        float64    `gorm:"not null"`
	Value         float64    `gorm:"not null"`
	PostalCode    int        `gorm:"not null"`
	SortIndex     int        `gorm:"not null"`
	Status        int        `gorm:"not null;index"`
	DeliveryID    *uuid.UUID `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime:false"`
	StartedAt     *time.Time
	CompletedAt   *time.Time
	FailureReason *string `gorm:"type:text"`
	FailureCode   *string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProofDTO represents the database structure for persisting delivery proofs.
// Proofs are append-only rows; they are never updated or deleted.
type ProofDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null"`
	URL       string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for proof entities.
// Overrides GORM's default naming convention to use "delivery_proofs".
func (ProofDTO) TableName() string {
	return "delivery_proofs"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional delivery and driver assignment.
func fromDomain(o *order.Order) OrderDTO {
	var deliveryID *uuid.UUID
	if id := o.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		TenantID:      o.TenantID().Bytes(),
		Number:        o.Number(),
		Weight:        o.Weight(),
		Value:         o.Value().Float64(),
		PostalCode:    o.PostalCode(),
		SortIndex:     o.SortIndex(),
		Status:        int(o.Status()),
		DeliveryID:    deliveryID,
		DriverID:      driverID,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		StartedAt:     o.StartedAt(),
		CompletedAt:   o.CompletedAt(),
		FailureReason: o.FailureReason(),
		FailureCode:   o.FailureCode(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveryID = &dID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		drID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &drID
	}

	value, err := kernel.NewMoney(dto.Value)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, tenantID, dto.Number,
		dto.Weight, value, dto.PostalCode, dto.SortIndex,
		order.Status(dto.Status), deliveryID, driverID,
		dto.CreatedAt, dto.UpdatedAt, dto.StartedAt, dto.CompletedAt,
		dto.FailureReason, dto.FailureCode,
	)
}

// proofFromDomain converts a delivery proof to its database representation.
func proofFromDomain(p order.DeliveryProof) ProofDTO {
	return ProofDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		DriverID:  p.DriverID().Bytes(),
		URL:       p.URL(),
		CreatedAt: p.CreatedAt(),
	}
}

// proofToDomain converts a proof DTO back to the domain value object.
func proofToDomain(dto ProofDTO) (order.DeliveryProof, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.DeliveryProof{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.DeliveryProof{}, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return order.DeliveryProof{}, err
	}

	return order.NewDeliveryProof(id, orderID, driverID, dto.URL, dto.CreatedAt)
}
