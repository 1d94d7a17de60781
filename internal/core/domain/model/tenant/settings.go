package tenant

import (
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// FreightType selects the active freight calculation strategy for a tenant.
type FreightType int

const (
	// FreightTypeUnknown represents a missing or undefined freight type.
	FreightTypeUnknown FreightType = iota

	// FreightDirectionCategory prices by the hardest direction in the
	// batch plus the vehicle category's flat value.
	FreightDirectionCategory

	// FreightDirectionDeliveryFee prices by the hardest direction plus a
	// per-delivery fee applied to the order count.
	FreightDirectionDeliveryFee

	// FreightDistance prices by route distance times a per-kilometer rate.
	FreightDistance
)

func getFreightTypeStrings() map[FreightType]string {
	return map[FreightType]string{
		FreightTypeUnknown:          "UNKNOWN",
		FreightDirectionCategory:    "DIRECAO_CATEGORIA",
		FreightDirectionDeliveryFee: "DIRECAO_TAXA_ENTREGA",
		FreightDistance:             "DISTANCIA",
	}
}

// Validate checks that the freight type is one of the three known strategies.
func (f FreightType) Validate() error {
	if _, ok := getFreightTypeStrings()[f]; !ok || f == FreightTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("freightType",
			fmt.Errorf("%d is not a valid freight type", f))
	}
	return nil
}

// String returns the persisted name of the freight type.
func (f FreightType) String() string {
	if str, ok := getFreightTypeStrings()[f]; ok {
		return str
	}
	return "UNKNOWN"
}

// Thresholds are the tenant's approval thresholds. A nil field means the
// threshold is not enforced, not a constraint of zero.
type Thresholds struct {
	// MaxFreightPercent is the ceiling on freight as a percentage of the
	// batch's total declared value.
	MaxFreightPercent *float64

	// MinOrderValue is the minimum total declared value of the batch.
	MinOrderValue *kernel.Money

	// MinWeight is the minimum total weight of the batch in kilograms.
	MinWeight *float64

	// MinOrderCount is the minimum number of orders in the batch.
	MinOrderCount *int
}

// Settings is a tenant's freight and approval configuration.
type Settings struct {
	TenantID         kernel.UUID
	FreightType      FreightType
	PricePerDelivery *kernel.Money
	PricePerKm       *kernel.Money
	Thresholds       Thresholds
}
