package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/order"
)

// ImportOrdersCommandHandler handles the business logic for bulk order
// import. Every order of the batch is persisted in one transaction: a single
// invalid or duplicate line rolls back the whole import.
type ImportOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewImportOrdersCommandHandler creates a handler for order import operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewImportOrdersCommandHandler(uowFactory OrderUoWFactory) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the import command, creating every order in SEM_ROTA.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	orders := make([]*order.Order, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		o, err := order.NewOrder(line.ID, cmd.TenantID(), line.Number, line.Weight,
			line.Value, line.PostalCode, line.SortIndex, now)
		if err != nil {
			return nil, err
		}

		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orders, nil
}
