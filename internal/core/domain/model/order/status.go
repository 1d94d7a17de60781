package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is kept in sync with
// the status of the delivery carrying the order: assignment, release,
// rejection and re-approval events on the delivery each map to a transition
// here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// SemRota is the initial status of an imported order: not yet batched
	// into any delivery.
	SemRota

	// EmRotaAguardandoLiberacao means the order is batched into a delivery
	// that is held for manager approval.
	EmRotaAguardandoLiberacao

	// EmRota means the order is batched into an approved, active delivery.
	EmRota

	// EmEntrega means the driver started working on this order.
	EmEntrega

	// Entregue is the terminal success status.
	Entregue

	// NaoEntregue is the terminal failure status; the order carries a
	// failure reason and code.
	NaoEntregue
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                   "UNKNOWN",
		SemRota:                   "SEM_ROTA",
		EmRotaAguardandoLiberacao: "EM_ROTA_AGUARDANDO_LIBERACAO",
		EmRota:                    "EM_ROTA",
		EmEntrega:                 "EM_ENTREGA",
		Entregue:                  "ENTREGUE",
		NaoEntregue:               "NAO_ENTREGUE",
	}
}

// transitions lists the legal target statuses for each source status.
// Terminal statuses have no entries.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		SemRota:                   {EmRotaAguardandoLiberacao, EmRota},
		EmRotaAguardandoLiberacao: {EmRota, SemRota},
		EmRota:                    {EmRotaAguardandoLiberacao, EmEntrega},
		EmEntrega:                 {Entregue, NaoEntregue},
	}
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "SEM_ROTA".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status is one of the terminal delivery
// outcomes.
func (s Status) IsTerminal() bool {
	return s == Entregue || s == NaoEntregue
}
