package delivery

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery manifest.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// ALiberar means the delivery is held for manager approval.
	ALiberar

	// Iniciado means the delivery is approved and active.
	Iniciado

	// Finalizado is the terminal status reached when every carried order
	// is in a terminal state. It is derived, never externally triggered.
	Finalizado

	// Rejeitado is the terminal status of a delivery rejected before
	// release; its orders are released back to SEM_ROTA.
	Rejeitado
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		ALiberar:      "A_LIBERAR",
		Iniciado:      "INICIADO",
		Finalizado:    "FINALIZADO",
		Rejeitado:     "REJEITADO",
	}
}

func transitions() map[Status][]Status {
	return map[Status][]Status{
		ALiberar: {Iniciado, Rejeitado},
		Iniciado: {ALiberar, Finalizado},
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "A_LIBERAR".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Finalizado || s == Rejeitado
}
