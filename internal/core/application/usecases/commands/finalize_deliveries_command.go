package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrFinalizeDeliveriesCommandIsNotConstructed = errors.New(
	"FinalizeDeliveriesCommand must be created via NewFinalizeDeliveriesCommand constructor",
)

// FinalizeDeliveriesCommand represents a sweep over every active delivery,
// finalizing those whose orders have all reached a terminal status. The
// sweep backs up the per-completion derived transition: it catches routes
// whose finalization was lost to a conflict or crash.
type FinalizeDeliveriesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewFinalizeDeliveriesCommand creates a finalization sweep command.
func NewFinalizeDeliveriesCommand() FinalizeDeliveriesCommand {
	return FinalizeDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FinalizeDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeDeliveriesCommandIsNotConstructed)
}
