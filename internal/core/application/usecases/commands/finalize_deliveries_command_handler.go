package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/delivery"
)

// FinalizeDeliveriesCommandHandler finalizes every INICIADO delivery whose
// orders have all completed. The whole sweep runs in one transaction; it is
// idempotent, so a lost race with a concurrent completion simply retries on
// the next run.
type FinalizeDeliveriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinalizeDeliveriesCommandHandler creates a handler for the sweep.
func NewFinalizeDeliveriesCommandHandler(uowFactory UoWFactory) FinalizeDeliveriesCommandHandler {
	return FinalizeDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the sweep and returns the number of deliveries finalized.
func (h *FinalizeDeliveriesCommandHandler) Handle(ctx context.Context, cmd FinalizeDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	active, err := deliveryRepo.GetAllInStatus(ctx, delivery.Iniciado)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()
	finalized := 0

	for _, route := range active {
		orders, err := orderRepo.GetByDelivery(ctx, route.ID())
		if err != nil {
			return 0, err
		}

		done := len(orders) > 0
		for _, o := range orders {
			if !o.Status().IsTerminal() {
				done = false
				break
			}
		}
		if !done {
			continue
		}

		if err = route.Finalize(now); err != nil {
			return 0, err
		}
		if err = deliveryRepo.Update(ctx, route); err != nil {
			return 0, err
		}
		finalized++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return finalized, nil
}
