// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Maps delivery domain entities to relational database tables with proper
// indexing for the approval work queue and the finalization sweep.
//
// Timestamps are managed by the domain layer, not by GORM: updated_at carries
// the business event time the audit trail reconstruction depends on.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null"`
	Freight     float64   `gorm:"not null"`
	Observation string    `gorm:"type:text"`
	Status      int       `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	StartedAt   *time.Time
	FinishedAt  *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ApprovalDTO represents the database structure for persisting approval records.
// Approvals are append-only rows; they are never updated or deleted.
type ApprovalDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Action     string    `gorm:"type:varchar(32);not null"`
	Reason     string    `gorm:"type:text"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for approval entities.
// Overrides GORM's default naming convention to use "approvals".
func (ApprovalDTO) TableName() string {
	return "approvals"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Approval records are persisted separately through AddApproval, so the DTO
// carries only the aggregate's own columns.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          d.ID().Bytes(),
		TenantID:    d.TenantID().Bytes(),
		DriverID:    d.DriverID().Bytes(),
		VehicleID:   d.VehicleID().Bytes(),
		Freight:     d.Freight().Float64(),
		Observation: d.Observation(),
		Status:      int(d.Status()),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
		StartedAt:   d.StartedAt(),
		FinishedAt:  d.FinishedAt(),
	}
}

// toDomain converts a database DTO and its approval rows to a delivery
// domain aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO, approvalDTOs []ApprovalDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	freight, err := kernel.NewMoney(dto.Freight)
	if err != nil {
		return nil, err
	}

	approvals := make([]delivery.Approval, 0, len(approvalDTOs))
	for _, aDto := range approvalDTOs {
		a, convErr := approvalToDomain(aDto)
		if convErr != nil {
			return nil, convErr
		}
		approvals = append(approvals, a)
	}

	return delivery.RestoreDelivery(
		id, tenantID, driverID, vehicleID,
		freight, dto.Observation,
		delivery.Status(dto.Status), approvals,
		dto.CreatedAt, dto.UpdatedAt, dto.StartedAt, dto.FinishedAt,
	)
}

// approvalFromDomain converts an approval record to its database representation.
func approvalFromDomain(a delivery.Approval) ApprovalDTO {
	return ApprovalDTO{
		ID:         a.ID().Bytes(),
		DeliveryID: a.DeliveryID().Bytes(),
		Action:     a.Action().String(),
		Reason:     a.Reason(),
		ActorID:    a.ActorID().Bytes(),
		CreatedAt:  a.CreatedAt(),
	}
}

// approvalToDomain converts an approval DTO back to the domain value object.
func approvalToDomain(dto ApprovalDTO) (delivery.Approval, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return delivery.Approval{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return delivery.Approval{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return delivery.Approval{}, err
	}

	return delivery.NewApproval(id, deliveryID, actionFromString(dto.Action), dto.Reason, actorID, dto.CreatedAt)
}

// actionFromString maps the persisted action name back to the enum. An
// unrecognized name maps to ActionUnknown and fails NewApproval's validation.
func actionFromString(s string) delivery.ApprovalAction {
	switch s {
	case delivery.ActionApproved.String():
		return delivery.ActionApproved
	case delivery.ActionRejected.String():
		return delivery.ActionRejected
	case delivery.ActionReapprovalNeeded.String():
		return delivery.ActionReapprovalNeeded
	default:
		return delivery.ActionUnknown
	}
}
