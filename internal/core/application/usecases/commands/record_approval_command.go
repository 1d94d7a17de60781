package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrRecordApprovalCommandIsNotConstructed = errors.New(
	"RecordApprovalCommand must be created via NewRecordApprovalCommand constructor",
)

// RecordApprovalCommand represents a supervisor's decision on a delivery:
// release it, reject it, or send an active route back for a new release.
type RecordApprovalCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	tenantID   kernel.UUID
	action     delivery.ApprovalAction
	reason     string
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordApprovalCommand creates a command carrying an approval decision.
// The reason is optional free text shown in the audit trail.
func NewRecordApprovalCommand(
	deliveryID kernel.UUID,
	tenantID kernel.UUID,
	action delivery.ApprovalAction,
	reason string,
	actorID kernel.UUID,
) (RecordApprovalCommand, error) {
	cmd := RecordApprovalCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTenantID(tenantID),
		cmd.setAction(action),
		cmd.setActorID(actorID),
	); err != nil {
		return RecordApprovalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordApprovalCommand) Validate() error {
	return c.guard.Validate(ErrRecordApprovalCommandIsNotConstructed)
}

// DeliveryID returns the delivery being decided on.
func (c RecordApprovalCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// TenantID returns the tenant scope of the decision.
func (c RecordApprovalCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Action returns the decision taken.
func (c RecordApprovalCommand) Action() delivery.ApprovalAction {
	return c.action
}

// Reason returns the optional justification.
func (c RecordApprovalCommand) Reason() string {
	return c.reason
}

// ActorID returns the user who decided.
func (c RecordApprovalCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RecordApprovalCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RecordApprovalCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RecordApprovalCommand) setAction(action delivery.ApprovalAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *RecordApprovalCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
