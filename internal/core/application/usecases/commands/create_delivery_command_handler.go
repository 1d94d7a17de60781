package commands

import (
	"context"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/services/freight"
	"backoffice/internal/core/domain/services/rules"
	"backoffice/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// creation. The workflow is a strict sequence: resolve the tenant's freight
// strategy, compute the batch's freight, evaluate the approval thresholds,
// then commit the delivery and every order transition in one transaction.
//
// When the rules validator demands approval the delivery is created in
// A_LIBERAR and its orders in EM_ROTA_AGUARDANDO_LIBERACAO; otherwise the
// route starts immediately as INICIADO with orders in EM_ROTA.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	selector   freight.Selector
	tenants    ports.TenantRepository
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	selector freight.Selector,
	tenants ports.TenantRepository,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		tenants:    tenants,
	}
}

// Handle processes the delivery creation command and returns the created
// delivery, pending or started.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	calculator, err := h.selector.Select(ctx, cmd.TenantID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllForTenantByIDs(ctx, cmd.TenantID(), cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	freightValue, err := calculator.Calculate(ctx, orders, cmd.VehicleID(), cmd.TenantID())
	if err != nil {
		return nil, err
	}

	settings, err := h.tenants.GetSettings(ctx, cmd.TenantID())
	if err != nil {
		return nil, err
	}

	totalValue := kernel.Money{}
	totalWeight := 0.0
	for _, o := range orders {
		totalValue = totalValue.Add(o.Value())
		totalWeight += o.Weight()
	}

	input, err := rules.NewInput(totalValue, totalWeight, len(orders), freightValue)
	if err != nil {
		return nil, err
	}
	verdict := rules.Validate(input, settings.Thresholds)

	now := time.Now().UTC()
	created, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.TenantID(), cmd.DriverID(),
		cmd.VehicleID(), freightValue, annotate(cmd.Observation(), verdict.Reasons),
		verdict.NeedsApproval, now)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err = o.AssignToDelivery(created.ID(), cmd.DriverID(), verdict.NeedsApproval, now); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// annotate appends the validator's hold reasons to the route note so the
// supervisor screen shows why the route is waiting.
func annotate(observation string, reasons []string) string {
	if len(reasons) == 0 {
		return observation
	}

	held := strings.Join(reasons, " ")
	if observation == "" {
		return held
	}
	return observation + " " + held
}
