// Package queries contains read-only operations in the CQRS architecture.
// Queries never mutate state; they read committed rows and shape them for
// the presentation layer.
package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery asks for the reconstructed audit trail of one order.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(orderID, tenantID)
//	if err != nil {
//	    return fmt.Errorf("invalid history request: %w", err)
//	}
//
//	events, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's audit trail.
func NewGetOrderHistoryQuery(orderID, tenantID kernel.UUID) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setTenantID(tenantID),
	); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TenantID returns the tenant scope of the request.
func (q GetOrderHistoryQuery) TenantID() kernel.UUID {
	return q.tenantID
}

func (q *GetOrderHistoryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderHistoryQuery) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	q.tenantID = tenantID
	return nil
}
