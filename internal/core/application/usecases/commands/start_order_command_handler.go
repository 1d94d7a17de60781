package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/order"
)

// StartOrderCommandHandler moves an order to EM_ENTREGA when the driver
// reports going out with it. Starting an already started order is a no-op
// that returns the order unchanged, so a retried request from the driver app
// never fails.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for order start reports.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start report and returns the order in its resulting
// state.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForTenant(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Start(cmd.DriverID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
