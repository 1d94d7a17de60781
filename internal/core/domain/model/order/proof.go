package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrDeliveryProofIsNotConstructed is returned when a DeliveryProof was not
// created through NewDeliveryProof.
var ErrDeliveryProofIsNotConstructed = errors.New("DeliveryProof must be created via NewDeliveryProof")

// DeliveryProof is an immutable attachment record produced when a driver
// completes or fails an order: a proof URL, the driver who captured it and
// the capture instant. Proofs are append-only; they are never mutated or
// deleted and feed the audit-trail reconstruction.
type DeliveryProof struct {
	id        kernel.UUID
	orderID   kernel.UUID
	driverID  kernel.UUID
	url       string
	createdAt time.Time

	isConstructed bool
}

// NewDeliveryProof creates a proof record. The URL is required.
func NewDeliveryProof(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	url string,
	at time.Time,
) (DeliveryProof, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), driverID.Validate()); err != nil {
		return DeliveryProof{}, err
	}
	if url == "" {
		return DeliveryProof{}, errs.NewValueIsRequiredError("url")
	}

	return DeliveryProof{
		id:            id,
		orderID:       orderID,
		driverID:      driverID,
		url:           url,
		createdAt:     at,
		isConstructed: true,
	}, nil
}

// Validate ensures the proof was created through NewDeliveryProof.
func (p DeliveryProof) Validate() error {
	if !p.isConstructed {
		return ErrDeliveryProofIsNotConstructed
	}
	return nil
}

// ID returns the proof's unique identifier.
func (p DeliveryProof) ID() kernel.UUID { return p.id }

// OrderID returns the order the proof belongs to.
func (p DeliveryProof) OrderID() kernel.UUID { return p.orderID }

// DriverID returns the driver who captured the proof.
func (p DeliveryProof) DriverID() kernel.UUID { return p.driverID }

// URL returns the attachment URL.
func (p DeliveryProof) URL() string { return p.url }

// CreatedAt returns the capture instant.
func (p DeliveryProof) CreatedAt() time.Time { return p.createdAt }
