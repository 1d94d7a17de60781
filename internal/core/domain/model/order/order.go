package order

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a shippable unit in the back office. It is an aggregate
// root that manages the order lifecycle from bulk import through assignment
// to a delivery, release, driver start and completion.
//
// Invariants:
//   - Belongs to exactly one tenant
//   - Belongs to at most one active delivery at any time
//   - Weight must be positive; declared value is non-negative
//   - Status transitions follow the lifecycle rules in status.go
//   - Never hard-deleted; rejection releases it back to SEM_ROTA
//
// Mutating methods take the event time explicitly so that updatedAt, which
// the audit-trail reconstruction depends on, is controlled by the caller
// rather than by the wall clock of this process.
type Order struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	number     string
	weight     float64
	value      kernel.Money
	postalCode int
	sortIndex  int

	status Status
	// baselineStatus is the status the aggregate had when it was loaded.
	// The persistence layer guards its UPDATE on it so a racing transition
	// loses with a StateConflictError instead of overwriting the winner.
	baselineStatus Status

	deliveryID *kernel.UUID
	driverID   *kernel.UUID

	createdAt   time.Time
	updatedAt   time.Time
	startedAt   *time.Time
	completedAt *time.Time

	failureReason *string
	failureCode   *string

	isConstructed bool
}

// NewOrder creates an imported order in SEM_ROTA status.
//
// Parameters:
//   - id, tenantID: valid UUIDs
//   - number: human order number, unique per tenant, required
//   - weight: package weight in kilograms, must be positive
//   - value: declared monetary value
//   - postalCode: destination postal code, must be positive
//   - sortIndex: route sorting hint
//   - at: creation instant (sets createdAt and updatedAt)
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	number string,
	weight float64,
	value kernel.Money,
	postalCode int,
	sortIndex int,
	at time.Time,
) (*Order, error) {
	o := &Order{
		status:         SemRota,
		baselineStatus: SemRota,
		value:          value,
		sortIndex:      sortIndex,
		createdAt:      at,
		updatedAt:      at,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setNumber(number),
		o.setWeight(weight),
		o.setPostalCode(postalCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time defaults. The given status becomes both the current and the
// baseline status used for optimistic concurrency.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	number string,
	weight float64,
	value kernel.Money,
	postalCode int,
	sortIndex int,
	status Status,
	deliveryID *kernel.UUID,
	driverID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	failureReason *string,
	failureCode *string,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:         status,
		baselineStatus: status,
		value:          value,
		sortIndex:      sortIndex,
		deliveryID:     deliveryID,
		driverID:       driverID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		startedAt:      startedAt,
		completedAt:    completedAt,
		failureReason:  failureReason,
		failureCode:    failureCode,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setNumber(number),
		o.setWeight(weight),
		o.setPostalCode(postalCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID { return o.tenantID }

// Number returns the human order number, unique per tenant.
func (o *Order) Number() string { return o.number }

// Weight returns the package weight in kilograms.
func (o *Order) Weight() float64 { return o.weight }

// Value returns the declared monetary value.
func (o *Order) Value() kernel.Money { return o.value }

// PostalCode returns the destination postal code used for direction lookups.
func (o *Order) PostalCode() int { return o.postalCode }

// SortIndex returns the route sorting hint.
func (o *Order) SortIndex() int { return o.sortIndex }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// BaselineStatus returns the status the aggregate had when it was loaded,
// before any transition in the current unit of work.
func (o *Order) BaselineStatus() Status { return o.baselineStatus }

// DeliveryID returns the carrying delivery's ID, or nil when unassigned.
func (o *Order) DeliveryID() *kernel.UUID { return o.deliveryID }

// DriverID returns the driver back-reference, or nil.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the instant of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// StartedAt returns when the driver started the order, or nil.
func (o *Order) StartedAt() *time.Time { return o.startedAt }

// CompletedAt returns when the driver completed the order, or nil.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// FailureReason returns the recorded failure reason, or nil.
func (o *Order) FailureReason() *string { return o.failureReason }

// FailureCode returns the recorded failure reason code, or nil.
func (o *Order) FailureCode() *string { return o.failureCode }

// AssignToDelivery batches the order into a delivery. When pendingApproval
// is true the order moves to EM_ROTA_AGUARDANDO_LIBERACAO, otherwise
// directly to EM_ROTA. Only SEM_ROTA orders can be assigned.
func (o *Order) AssignToDelivery(deliveryID, driverID kernel.UUID, pendingApproval bool, at time.Time) error {
	if err := errors.Join(deliveryID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	target := EmRota
	if pendingApproval {
		target = EmRotaAguardandoLiberacao
	}
	if err := o.transition(target); err != nil {
		return err
	}

	o.deliveryID = &deliveryID
	o.driverID = &driverID
	o.touch(at)
	return nil
}

// ReleaseForDelivery moves an order held for approval to EM_ROTA after its
// delivery was approved. Only an EM_ROTA_AGUARDANDO_LIBERACAO order carried
// by a delivery can be released; the shared transition table also reaches
// EM_ROTA from SEM_ROTA, but that is the direct-assign path and goes through
// AssignToDelivery.
func (o *Order) ReleaseForDelivery(at time.Time) error {
	if o.status != EmRotaAguardandoLiberacao || o.deliveryID == nil {
		return errs.NewStateConflictError("order", o.id.String(), o.status.String(), EmRota.String())
	}
	o.status = EmRota
	o.touch(at)
	return nil
}

// SuspendForReapproval moves an EM_ROTA order back to
// EM_ROTA_AGUARDANDO_LIBERACAO after its delivery was flagged for
// re-approval. Only an EM_ROTA order carried by a delivery can be suspended.
func (o *Order) SuspendForReapproval(at time.Time) error {
	if o.status != EmRota || o.deliveryID == nil {
		return errs.NewStateConflictError("order", o.id.String(), o.status.String(),
			EmRotaAguardandoLiberacao.String())
	}
	o.status = EmRotaAguardandoLiberacao
	o.touch(at)
	return nil
}

// Unassign releases the order back to SEM_ROTA after its delivery was
// rejected before release. The delivery reference is kept so the audit trail
// can still reach the rejection records; membership in an active route is
// determined by status, not by the reference alone. A later assignment
// overwrites the reference.
func (o *Order) Unassign(at time.Time) error {
	if err := o.transition(SemRota); err != nil {
		return err
	}
	o.driverID = nil
	o.touch(at)
	return nil
}

// Start records that the driver started working on the order, moving it to
// EM_ENTREGA and setting startedAt once.
//
// Start is idempotent: re-invocation on an already started order is a no-op,
// not an error, so a retried request from the driver app cannot fail.
func (o *Order) Start(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status == EmEntrega && o.startedAt != nil {
		return nil
	}

	if err := o.transition(EmEntrega); err != nil {
		return err
	}

	o.driverID = &driverID
	o.startedAt = &at
	o.touch(at)
	return nil
}

// Complete records the delivery outcome for the order. When delivered is
// false a failure reason is required and both reason and code are recorded.
// Only EM_ENTREGA orders can be completed; completing twice is a conflict.
func (o *Order) Complete(delivered bool, failureReason, failureCode *string, at time.Time) error {
	target := Entregue
	if !delivered {
		target = NaoEntregue
		if failureReason == nil || *failureReason == "" {
			return errs.NewValueIsRequiredError("failureReason")
		}
	}

	if err := o.transition(target); err != nil {
		return err
	}

	if !delivered {
		o.failureReason = failureReason
		o.failureCode = failureCode
	}
	o.completedAt = &at
	o.touch(at)
	return nil
}

func (o *Order) transition(target Status) error {
	if !o.status.CanTransitionTo(target) {
		return errs.NewStateConflictError("order", o.id.String(), o.status.String(), target.String())
	}
	o.status = target
	return nil
}

func (o *Order) touch(at time.Time) {
	o.updatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setPostalCode(postalCode int) error {
	if postalCode <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("postalCode",
			fmt.Errorf("%d is not greater than 0", postalCode))
	}
	o.postalCode = postalCode
	return nil
}
