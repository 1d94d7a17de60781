package kernel

import (
	"fmt"
	"math"

	"backoffice/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in the
// tenant's currency. Amounts are carried as float64 and normalized to two
// decimal places with standard (half away from zero) rounding, matching how
// freight values and order values are stored.
//
// The zero value is a valid zero amount.
type Money struct {
	amount float64
}

// NewMoney creates a Money value. The amount must be a finite, non-negative
// number; otherwise a ValueIsInvalidError is returned. The amount is rounded
// to two decimal places.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: round2(amount)}, nil
}

// MustMoney is a convenience constructor for amounts known to be valid,
// such as literals in tests. It panics on invalid input.
func MustMoney(amount float64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Float64 returns the amount as a float64 rounded to two decimal places.
func (m Money) Float64() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: round2(m.amount + other.amount)}
}

// MulInt returns the amount multiplied by a non-negative integer factor,
// used for per-delivery fees applied to an order count.
func (m Money) MulInt(n int) Money {
	return Money{amount: round2(m.amount * float64(n))}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two amounts after rounding.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimal places, e.g. "300.00".
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
