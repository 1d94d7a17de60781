package delivery

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// OrderEffect tells the application layer which transition every order
// carried by the delivery must make after a decision was recorded. The
// effect and the delivery's own transition must be committed atomically.
type OrderEffect int

const (
	// EffectNone requires no order-side change.
	EffectNone OrderEffect = iota

	// EffectReleaseOrders moves orders awaiting release to EM_ROTA.
	EffectReleaseOrders

	// EffectUnassignOrders releases orders back to SEM_ROTA and detaches
	// them from the delivery.
	EffectUnassignOrders

	// EffectSuspendOrders moves EM_ROTA orders back to
	// EM_ROTA_AGUARDANDO_LIBERACAO.
	EffectSuspendOrders
)

// Delivery represents a manifest: a batch of orders assigned to one driver
// and vehicle for a single trip. It is the aggregate root for the approval
// workflow.
//
// Invariants:
//   - Belongs to exactly one tenant
//   - The freight value is set once at creation and never changes
//   - Approval records are append-only, ordered by creation time
//   - Status transitions follow the lifecycle rules in status.go
type Delivery struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	driverID    kernel.UUID
	vehicleID   kernel.UUID
	freight     kernel.Money
	observation string

	status Status
	// baselineStatus is the status at load time; the persistence layer
	// guards its UPDATE on it so a racing decision loses with a
	// StateConflictError.
	baselineStatus Status

	approvals []Approval

	createdAt  time.Time
	updatedAt  time.Time
	startedAt  *time.Time
	finishedAt *time.Time

	isConstructed bool
}

// NewDelivery creates a manifest for the given batch. When needsApproval is
// true (the rules validator flagged at least one threshold) the delivery
// starts at A_LIBERAR; otherwise it starts at INICIADO with startedAt set.
func NewDelivery(
	id kernel.UUID,
	tenantID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	freight kernel.Money,
	observation string,
	needsApproval bool,
	at time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		validateRequired("deliveryId", id),
		validateRequired("tenantId", tenantID),
		validateRequired("driverId", driverID),
		validateRequired("vehicleId", vehicleID),
	); err != nil {
		return nil, err
	}

	d := &Delivery{
		id:            id,
		tenantID:      tenantID,
		driverID:      driverID,
		vehicleID:     vehicleID,
		freight:       freight,
		observation:   observation,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if needsApproval {
		d.status = ALiberar
	} else {
		d.status = Iniciado
		d.startedAt = &at
	}
	d.baselineStatus = d.status

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, including its
// approval history in ascending creation order.
func RestoreDelivery(
	id kernel.UUID,
	tenantID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	freight kernel.Money,
	observation string,
	status Status,
	approvals []Approval,
	createdAt time.Time,
	updatedAt time.Time,
	startedAt *time.Time,
	finishedAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		validateRequired("deliveryId", id),
		validateRequired("tenantId", tenantID),
		validateRequired("driverId", driverID),
		validateRequired("vehicleId", vehicleID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	for _, a := range approvals {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:             id,
		tenantID:       tenantID,
		driverID:       driverID,
		vehicleID:      vehicleID,
		freight:        freight,
		observation:    observation,
		status:         status,
		baselineStatus: status,
		approvals:      approvals,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		startedAt:      startedAt,
		finishedAt:     finishedAt,
		isConstructed:  true,
	}, nil
}

func validateRequired(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// TenantID returns the owning tenant's identifier.
func (d *Delivery) TenantID() kernel.UUID { return d.tenantID }

// DriverID returns the assigned driver.
func (d *Delivery) DriverID() kernel.UUID { return d.driverID }

// VehicleID returns the assigned vehicle.
func (d *Delivery) VehicleID() kernel.UUID { return d.vehicleID }

// Freight returns the freight value computed at creation.
func (d *Delivery) Freight() kernel.Money { return d.freight }

// Observation returns the free-text observation.
func (d *Delivery) Observation() string { return d.observation }

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status { return d.status }

// BaselineStatus returns the status at load time, before any transition in
// the current unit of work.
func (d *Delivery) BaselineStatus() Status { return d.baselineStatus }

// Approvals returns the decision history in ascending creation order.
// The returned slice is a copy.
func (d *Delivery) Approvals() []Approval {
	out := make([]Approval, len(d.approvals))
	copy(out, d.approvals)
	return out
}

// CreatedAt returns the creation instant.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the instant of the last mutation.
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// StartedAt returns when the delivery first became active, or nil.
func (d *Delivery) StartedAt() *time.Time { return d.startedAt }

// FinishedAt returns when the delivery was finalized, or nil.
func (d *Delivery) FinishedAt() *time.Time { return d.finishedAt }

// RecordApproval applies a decision to the delivery and appends the
// immutable approval record. It returns the OrderEffect the application
// layer must apply to every carried order in the same transaction.
//
// Legal decisions:
//   - APROVADO on A_LIBERAR: delivery becomes INICIADO, orders are released
//   - REJEITADO on A_LIBERAR: delivery becomes REJEITADO, orders are freed
//   - NOVA_LIBERACAO on INICIADO: delivery returns to A_LIBERAR, orders are
//     suspended
//
// Approving an already started delivery again is an idempotent no-op so a
// retried release request cannot fail; no record is appended for it. Any
// other combination is a StateConflictError naming the current and the
// requested state; a second approval racing the first loses here or on the
// guarded UPDATE.
func (d *Delivery) RecordApproval(a Approval) (OrderEffect, error) {
	if err := a.Validate(); err != nil {
		return EffectNone, err
	}
	if !a.DeliveryID().IsEqual(d.id) {
		return EffectNone, errs.NewValueIsInvalidError("approval.deliveryId")
	}

	if a.Action() == ActionApproved && d.status == Iniciado {
		return EffectNone, nil
	}

	var target Status
	var effect OrderEffect
	switch a.Action() {
	case ActionApproved:
		target, effect = Iniciado, EffectReleaseOrders
	case ActionRejected:
		target, effect = Rejeitado, EffectUnassignOrders
	case ActionReapprovalNeeded:
		target, effect = ALiberar, EffectSuspendOrders
	default:
		return EffectNone, errs.NewValueIsInvalidError("action")
	}

	if err := d.transition(target); err != nil {
		return EffectNone, err
	}

	if target == Iniciado && d.startedAt == nil {
		at := a.CreatedAt()
		d.startedAt = &at
	}

	d.approvals = append(d.approvals, a)
	d.touch(a.CreatedAt())
	return effect, nil
}

// Finalize moves an active delivery to FINALIZADO. It is a derived
// transition: the caller invokes it only after observing that every carried
// order reached a terminal state.
func (d *Delivery) Finalize(at time.Time) error {
	if err := d.transition(Finalizado); err != nil {
		return err
	}
	d.finishedAt = &at
	d.touch(at)
	return nil
}

func (d *Delivery) transition(target Status) error {
	if !d.status.CanTransitionTo(target) {
		return errs.NewStateConflictError("delivery", d.id.String(), d.status.String(), target.String())
	}
	d.status = target
	return nil
}

func (d *Delivery) touch(at time.Time) {
	d.updatedAt = at
}
