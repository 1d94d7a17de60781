// Package rules implements the delivery rules validator deciding whether a
// new delivery starts immediately or waits for a supervisor's release.
package rules

import (
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/tenant"
	"backoffice/internal/pkg/errs"
)

// Input is the snapshot of batch aggregates the validator evaluates. It is
// built once from the orders about to form a delivery so that the validator
// itself stays a pure function of its arguments.
type Input struct {
	totalValue  kernel.Money
	totalWeight float64
	orderCount  int
	freight     kernel.Money
}

// NewInput creates a validator input.
//
// Returns:
//   - Input: The aggregated batch snapshot
//   - error: ValueIsInvalidError when the weight or count is negative
func NewInput(totalValue kernel.Money, totalWeight float64, orderCount int, freight kernel.Money) (Input, error) {
	if totalWeight < 0 {
		return Input{}, errs.NewValueIsInvalidErrorWithCause("totalWeight",
			fmt.Errorf("%v is negative", totalWeight))
	}
	if orderCount < 0 {
		return Input{}, errs.NewValueIsInvalidErrorWithCause("orderCount",
			fmt.Errorf("%d is negative", orderCount))
	}

	return Input{
		totalValue:  totalValue,
		totalWeight: totalWeight,
		orderCount:  orderCount,
		freight:     freight,
	}, nil
}

// Result is the validator's verdict. Reasons lists one human-readable
// sentence per violated threshold, in the order the thresholds are checked.
type Result struct {
	NeedsApproval bool
	Reasons       []string
}

// Validate checks the batch against the tenant's approval thresholds.
//
// A nil threshold is not enforced. Every enforced threshold is evaluated, so
// a batch violating several rules reports every reason at once. The
// freight-percent rule is skipped when the batch's total value is zero, since
// the percentage is undefined there.
func Validate(input Input, thresholds tenant.Thresholds) Result {
	var reasons []string

	if thresholds.MinOrderValue != nil && input.totalValue.LessThan(*thresholds.MinOrderValue) {
		reasons = append(reasons, fmt.Sprintf(
			"Valor total (R$ %.2f) abaixo do mínimo (R$ %.2f).",
			input.totalValue.Float64(), thresholds.MinOrderValue.Float64()))
	}

	if thresholds.MaxFreightPercent != nil && input.totalValue.Float64() > 0 {
		percent := input.freight.Float64() / input.totalValue.Float64() * 100
		if percent > *thresholds.MaxFreightPercent {
			reasons = append(reasons, fmt.Sprintf(
				"Frete (%.2f%%) acima do limite de %.2f%% do valor da carga.",
				percent, *thresholds.MaxFreightPercent))
		}
	}

	if thresholds.MinWeight != nil && input.totalWeight < *thresholds.MinWeight {
		reasons = append(reasons, fmt.Sprintf(
			"Peso total (%.2f kg) abaixo do mínimo (%.2f kg).",
			input.totalWeight, *thresholds.MinWeight))
	}

	if thresholds.MinOrderCount != nil && input.orderCount < *thresholds.MinOrderCount {
		reasons = append(reasons, fmt.Sprintf(
			"Quantidade de pedidos (%d) abaixo do mínimo (%d).",
			input.orderCount, *thresholds.MinOrderCount))
	}

	return Result{NeedsApproval: len(reasons) > 0, Reasons: reasons}
}
