package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrNoOrdersSelected = errors.New("at least one order is required to form a delivery")
)

// CreateDeliveryCommand represents a request to group SEM_ROTA orders into a
// new routed delivery for a driver and vehicle.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(deliveryID, tenantID, driverID,
//	    vehicleID, orderIDs, "Entregar até 18h")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, selector, tenants)
//	created, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	tenantID    kernel.UUID
	driverID    kernel.UUID
	vehicleID   kernel.UUID
	orderIDs    []kernel.UUID
	observation string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to form a delivery.
// Validates every id and requires a non-empty order selection. The
// observation is free text from the back office and may be empty.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	tenantID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	orderIDs []kernel.UUID,
	observation string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		observation: observation,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTenantID(tenantID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to create.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TenantID returns the tenant forming the delivery.
func (c CreateDeliveryCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// DriverID returns the driver assigned to the route.
func (c CreateDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle assigned to the route.
func (c CreateDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// OrderIDs returns the orders selected for the route.
func (c CreateDeliveryCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Observation returns the optional free-text note for the route.
func (c CreateDeliveryCommand) Observation() string {
	return c.observation
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDeliveryCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateDeliveryCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrNoOrdersSelected
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}
