package tenant

import (
	"backoffice/internal/core/domain/model/kernel"
)

// Direction is a tenant-configured postal-code range with an associated
// surcharge value. When several ranges match the same order, the one with
// the highest value wins; across a batch the calculators keep the global
// maximum, not a sum.
type Direction struct {
	ID         kernel.UUID
	TenantID   kernel.UUID
	Name       string
	RangeStart int
	RangeEnd   int
	Value      kernel.Money
}

// Matches reports whether the postal code falls inside the direction's
// range, boundaries included.
func (d Direction) Matches(postalCode int) bool {
	return postalCode >= d.RangeStart && postalCode <= d.RangeEnd
}
