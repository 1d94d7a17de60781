package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingDeliveriesQueryHandler reads the A_LIBERAR work queue straight
// from the database, oldest first, so supervisors release routes in arrival
// order.
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for work queue reads.
// Requires a GORM database connection for query execution.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns the tenant's pending deliveries.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]GetPendingDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			vehicle_id,
			freight,
			observation,
			created_at
		FROM deliveries
		WHERE tenant_id = ? AND status = ?
		ORDER BY created_at
	`, query.TenantID().Bytes(), delivery.ALiberar).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingDeliveriesQueryResponse
		var id, driverID, vehicleID uuid.UUID
		var freight float64
		var observation string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&driverID,
			&vehicleID,
			&freight,
			&observation,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}

		resp.Freight = freight
		resp.Observation = observation
		resp.CreatedAt = createdAt
		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
