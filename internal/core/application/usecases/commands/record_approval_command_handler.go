package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// RecordApprovalCommandHandler applies a supervisor's decision to a delivery
// and to every order it carries, atomically.
//
// The delivery transition and the order transitions commit in one
// transaction guarded by the delivery's loaded status, so of two racing
// decisions exactly one wins and the loser surfaces a conflict.
type RecordApprovalCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordApprovalCommandHandler creates a handler for approval decisions.
func NewRecordApprovalCommandHandler(uowFactory UoWFactory) RecordApprovalCommandHandler {
	return RecordApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval decision and returns the delivery in its
// resulting state.
func (h *RecordApprovalCommandHandler) Handle(ctx context.Context, cmd RecordApprovalCommand) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()
	target, err := deliveryRepo.GetForTenant(ctx, cmd.TenantID(), cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	approval, err := delivery.NewApproval(kernel.NewUUID(), target.ID(), cmd.Action(),
		cmd.Reason(), cmd.ActorID(), now)
	if err != nil {
		return nil, err
	}

	effect, err := target.RecordApproval(approval)
	if err != nil {
		return nil, err
	}

	if effect == delivery.EffectNone {
		// idempotent re-release, nothing was recorded
		return target, nil
	}

	if err = deliveryRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	if err = deliveryRepo.AddApproval(ctx, approval); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetByDelivery(ctx, target.ID())
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		changed, effectErr := applyEffect(o, effect, now)
		if effectErr != nil {
			return nil, effectErr
		}
		if !changed {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

// applyEffect applies the decision's order-side transition to an order in the
// effect's source state. An order the driver already started or completed is
// outside the decision's scope and stays untouched: a re-release request on
// an active route suspends only the EM_ROTA orders, and a release or
// rejection moves only the EM_ROTA_AGUARDANDO_LIBERACAO ones.
func applyEffect(o *order.Order, effect delivery.OrderEffect, at time.Time) (bool, error) {
	switch effect {
	case delivery.EffectReleaseOrders:
		if o.Status() != order.EmRotaAguardandoLiberacao {
			return false, nil
		}
		return true, o.ReleaseForDelivery(at)
	case delivery.EffectUnassignOrders:
		if o.Status() != order.EmRotaAguardandoLiberacao {
			return false, nil
		}
		return true, o.Unassign(at)
	case delivery.EffectSuspendOrders:
		if o.Status() != order.EmRota {
			return false, nil
		}
		return true, o.SuspendForReapproval(at)
	default:
		return false, nil
	}
}
