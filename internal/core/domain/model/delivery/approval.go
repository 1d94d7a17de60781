package delivery

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrApprovalIsNotConstructed is returned when an Approval was not created
// through NewApproval.
var ErrApprovalIsNotConstructed = errors.New("Approval must be created via NewApproval")

// ApprovalAction is the decision recorded on a pending delivery.
type ApprovalAction int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown ApprovalAction = iota

	// ActionApproved releases an A_LIBERAR delivery.
	ActionApproved

	// ActionRejected rejects an A_LIBERAR delivery and frees its orders.
	ActionRejected

	// ActionReapprovalNeeded flags an INICIADO delivery (e.g. after a
	// manifest edit) so it must be approved again.
	ActionReapprovalNeeded
)

func getActionStrings() map[ApprovalAction]string {
	return map[ApprovalAction]string{
		ActionUnknown:          "UNKNOWN",
		ActionApproved:         "APROVADO",
		ActionRejected:         "REJEITADO",
		ActionReapprovalNeeded: "NOVA_LIBERACAO",
	}
}

// Validate checks that the action is one of the defined decisions.
func (a ApprovalAction) Validate() error {
	if _, ok := getActionStrings()[a]; !ok || a == ActionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid approval action", a))
	}
	return nil
}

// String returns the persisted name of the action, e.g. "APROVADO".
func (a ApprovalAction) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}

// Approval is an immutable decision record attached to a delivery: the
// action taken, a free-text reason, the actor who decided and the decision
// instant. Approvals are created once per decision event, never mutated or
// deleted, and are ordered by creation time.
type Approval struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	action     ApprovalAction
	reason     string
	actorID    kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewApproval creates an approval record. The reason is optional.
func NewApproval(
	id kernel.UUID,
	deliveryID kernel.UUID,
	action ApprovalAction,
	reason string,
	actorID kernel.UUID,
	at time.Time,
) (Approval, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		action.Validate(),
		actorID.Validate(),
	); err != nil {
		return Approval{}, err
	}

	return Approval{
		id:            id,
		deliveryID:    deliveryID,
		action:        action,
		reason:        reason,
		actorID:       actorID,
		createdAt:     at,
		isConstructed: true,
	}, nil
}

// Validate ensures the approval was created through NewApproval.
func (a Approval) Validate() error {
	if !a.isConstructed {
		return ErrApprovalIsNotConstructed
	}
	return nil
}

// ID returns the approval's unique identifier.
func (a Approval) ID() kernel.UUID { return a.id }

// DeliveryID returns the delivery the decision was recorded on.
func (a Approval) DeliveryID() kernel.UUID { return a.deliveryID }

// Action returns the decision taken.
func (a Approval) Action() ApprovalAction { return a.action }

// Reason returns the free-text reason, possibly empty.
func (a Approval) Reason() string { return a.reason }

// ActorID returns who made the decision.
func (a Approval) ActorID() kernel.UUID { return a.actorID }

// CreatedAt returns the decision instant.
func (a Approval) CreatedAt() time.Time { return a.createdAt }
