package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler records a delivery outcome for an order and
// derives the route finalization: when the last order of a delivery reaches
// a terminal status, the delivery itself moves to FINALIZADO in the same
// transaction. Finalization is never triggered externally.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery outcomes.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the outcome report and returns the order in its terminal
// state.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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

	now := time.Now().UTC()
	if err = o.Complete(cmd.Delivered(), cmd.FailureReason(), cmd.FailureCode(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if cmd.Delivered() && cmd.ProofURL() != nil && o.DriverID() != nil {
		proof, proofErr := order.NewDeliveryProof(kernel.NewUUID(), o.ID(), *o.DriverID(),
			*cmd.ProofURL(), now)
		if proofErr != nil {
			return nil, proofErr
		}
		if err = orderRepo.AddProof(ctx, proof); err != nil {
			return nil, err
		}
	}

	if err = h.finalizeWhenDone(ctx, uow, o, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// finalizeWhenDone checks the order's delivery after every completion and
// moves it to FINALIZADO once no carried order remains active.
func (h *CompleteOrderCommandHandler) finalizeWhenDone(ctx context.Context, uow UoW, o *order.Order, now time.Time) error {
	if o.DeliveryID() == nil {
		return nil
	}

	deliveryRepo := uow.DeliveryRepository()
	route, err := deliveryRepo.GetForTenant(ctx, o.TenantID(), *o.DeliveryID())
	if err != nil {
		return err
	}
	if route.Status() != delivery.Iniciado {
		return nil
	}

	siblings, err := uow.OrderRepository().GetByDelivery(ctx, route.ID())
	if err != nil {
		return err
	}
	for _, sibling := range siblings {
		if !sibling.Status().IsTerminal() {
			return nil
		}
	}

	if err = route.Finalize(now); err != nil {
		return err
	}
	return deliveryRepo.Update(ctx, route)
}
