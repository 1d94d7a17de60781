package commands

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrNoOrderLines = errors.New("at least one order line is required")
)

// OrderLine is one order of an import batch, already parsed by the caller.
type OrderLine struct {
	ID         kernel.UUID
	Number     string
	Weight     float64
	Value      kernel.Money
	PostalCode int
	SortIndex  int
}

// ImportOrdersCommand represents a request to register a batch of orders for
// a tenant. Imported orders start in SEM_ROTA, available for routing.
//
// Example:
//
//	lines := []OrderLine{{ID: kernel.NewUUID(), Number: "PED-0001", Weight: 12.5,
//	    Value: kernel.MustMoney(300), PostalCode: 4510020, SortIndex: 1}}
//	cmd, err := NewImportOrdersCommand(tenantID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid import: %w", err)
//	}
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	lines    []OrderLine

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to import a batch of orders.
// Validates the tenant id and every line: number required, weight positive,
// postal code positive.
func NewImportOrdersCommand(tenantID kernel.UUID, lines []OrderLine) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setLines(lines),
	); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// TenantID returns the tenant the orders belong to.
func (c ImportOrdersCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Lines returns the order lines to import.
func (c ImportOrdersCommand) Lines() []OrderLine {
	return c.lines
}

func (c *ImportOrdersCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *ImportOrdersCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrNoOrderLines
	}

	for i, line := range lines {
		if err := line.ID.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if line.Number == "" {
			return fmt.Errorf("line %d: %w", i, errs.NewValueIsRequiredError("number"))
		}
		if line.Weight <= 0 {
			return fmt.Errorf("line %d: %w", i, errs.NewValueIsInvalidError("weight"))
		}
		if line.PostalCode <= 0 {
			return fmt.Errorf("line %d: %w", i, errs.NewValueIsInvalidError("postalCode"))
		}
	}

	c.lines = lines
	return nil
}
