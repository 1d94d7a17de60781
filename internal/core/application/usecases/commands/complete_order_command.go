package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a driver reporting an order's outcome:
// delivered, or not delivered with a reason. A proof photo URL may accompany
// a successful outcome.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	tenantID      kernel.UUID
	delivered     bool
	failureReason *string
	failureCode   *string
	proofURL      *string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command carrying a delivery outcome.
// A failed outcome requires a reason; the reason code and proof URL are
// optional.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	delivered bool,
	failureReason *string,
	failureCode *string,
	proofURL *string,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		delivered:     delivered,
		failureReason: failureReason,
		failureCode:   failureCode,
		proofURL:      proofURL,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	if !delivered && (failureReason == nil || *failureReason == "") {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("failureReason")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant scope of the request.
func (c CompleteOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Delivered reports whether the order reached the recipient.
func (c CompleteOrderCommand) Delivered() bool {
	return c.delivered
}

// FailureReason returns the reason for a failed outcome, nil on success.
func (c CompleteOrderCommand) FailureReason() *string {
	return c.failureReason
}

// FailureCode returns the optional machine-readable failure code.
func (c CompleteOrderCommand) FailureCode() *string {
	return c.failureCode
}

// ProofURL returns the optional URL of the captured delivery proof.
func (c CompleteOrderCommand) ProofURL() *string {
	return c.proofURL
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}
