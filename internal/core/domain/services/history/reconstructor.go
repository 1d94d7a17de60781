// Package history implements the audit-trail reconstruction engine.
//
// There is no stored event log. Every read re-derives the order's full
// history from the current row values of the order, its linked delivery,
// that delivery's approval records and the order's delivery proofs. The
// derivation is a pure function: it never writes, and unchanged rows always
// reproduce the identical event sequence.
package history

import (
	"sort"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/order"
)

// Reconstruct derives the ordered audit trail for an order.
//
// Parameters:
//   - o: The order whose history is being rebuilt
//   - d: The order's linked delivery, nil when the order was never routed
//   - proofs: The order's delivery proofs, any order
//
// The returned events are sorted ascending by timestamp with a stable sort,
// so simultaneous events keep their causal emission order. When the order's
// updatedAt is later than every derived event and its current status is not
// the one the trail already explains, a synthetic "status updated" event
// records the unexplained change instead of dropping it.
func Reconstruct(o *order.Order, d *delivery.Delivery, proofs []order.DeliveryProof) []Event {
	events := emit(o, d, proofs)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	if fallback, ok := unexplainedStatusChange(o, events); ok {
		events = append(events, fallback)
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Timestamp.Before(events[j].Timestamp)
		})
	}

	return events
}

func emit(o *order.Order, d *delivery.Delivery, proofs []order.DeliveryProof) []Event {
	events := []Event{
		newEvent(TypeCreated, o.ID().String(), o.CreatedAt(), "Pedido criado", "",
			map[string]string{DetailStatus: order.SemRota.String()}),
	}

	if d != nil {
		events = append(events, associationEvent(o, d))
		events = append(events, approvalEvents(d)...)

		if d.Status() == delivery.Finalizado && d.FinishedAt() != nil {
			events = append(events, newEvent(TypeRouteFinalized, d.ID().String(),
				*d.FinishedAt(), "Rota finalizada", "", nil))
		}
	}

	if o.StartedAt() != nil {
		events = append(events, newEvent(TypeStarted, o.ID().String(), *o.StartedAt(),
			"Entrega iniciada", actorFromOrder(o),
			map[string]string{DetailStatus: order.EmEntrega.String()}))
	}

	if o.CompletedAt() != nil {
		events = append(events, completionEvent(o))
	}

	sorted := make([]order.DeliveryProof, len(proofs))
	copy(sorted, proofs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().Before(sorted[j].CreatedAt())
	})
	for _, p := range sorted {
		events = append(events, newEvent(TypeProofRegistered, p.ID().String(), p.CreatedAt(),
			"Comprovante de entrega registrado", p.DriverID().String(),
			map[string]string{DetailURL: p.URL()}))
	}

	return events
}

// associationEvent derives the "order joined a route" event. Its subtype
// depends on the delivery's current status: a delivery still awaiting
// release reads as a pending association. The timestamp is the delivery's
// createdAt as long as the delivery was created no earlier than the order;
// an older delivery reference means the linkage was mutated out of band and
// the order's own updatedAt is the only honest timestamp left.
func associationEvent(o *order.Order, d *delivery.Delivery) Event {
	at := d.CreatedAt()
	if d.CreatedAt().Before(o.CreatedAt()) {
		at = o.UpdatedAt()
	}

	if d.Status() == delivery.ALiberar {
		return newEvent(TypeAssociated, d.ID().String(), at,
			"Pedido incluído em rota, aguardando liberação", "",
			map[string]string{DetailStatus: order.EmRotaAguardandoLiberacao.String()})
	}
	return newEvent(TypeAssociated, d.ID().String(), at,
		"Pedido incluído em rota", "",
		map[string]string{DetailStatus: order.EmRota.String()})
}

// approvalEvents derives one event per approval record, ascending by
// creation, each carrying the order status that decision produced.
func approvalEvents(d *delivery.Delivery) []Event {
	approvals := d.Approvals()
	sort.SliceStable(approvals, func(i, j int) bool {
		return approvals[i].CreatedAt().Before(approvals[j].CreatedAt())
	})

	events := make([]Event, 0, len(approvals))
	for _, a := range approvals {
		details := map[string]string{}
		if a.Reason() != "" {
			details[DetailReason] = a.Reason()
		}

		switch a.Action() {
		case delivery.ActionApproved:
			details[DetailStatus] = order.EmRota.String()
			events = append(events, newEvent(TypeReleased, a.ID().String(), a.CreatedAt(),
				"Rota liberada para entrega", a.ActorID().String(), details))
		case delivery.ActionRejected:
			details[DetailStatus] = order.SemRota.String()
			events = append(events, newEvent(TypeRejected, a.ID().String(), a.CreatedAt(),
				"Rota rejeitada", a.ActorID().String(), details))
		case delivery.ActionReapprovalNeeded:
			details[DetailStatus] = order.EmRotaAguardandoLiberacao.String()
			events = append(events, newEvent(TypeReapprovalRequired, a.ID().String(), a.CreatedAt(),
				"Nova liberação solicitada", a.ActorID().String(), details))
		}
	}
	return events
}

func completionEvent(o *order.Order) Event {
	if o.Status() == order.NaoEntregue {
		details := map[string]string{DetailStatus: order.NaoEntregue.String()}
		if o.FailureReason() != nil {
			details[DetailReason] = *o.FailureReason()
		}
		if o.FailureCode() != nil {
			details[DetailReasonCode] = *o.FailureCode()
		}
		return newEvent(TypeNotDelivered, o.ID().String(), *o.CompletedAt(),
			"Pedido não entregue", actorFromOrder(o), details)
	}

	return newEvent(TypeDelivered, o.ID().String(), *o.CompletedAt(),
		"Pedido entregue", actorFromOrder(o),
		map[string]string{DetailStatus: order.Entregue.String()})
}

// unexplainedStatusChange decides whether the sorted trail needs the
// synthetic catch-all event. It fires only for a strictly later updatedAt
// whose resulting status no derived event accounts for, and never when the
// updatedAt is simply the start or completion write under another name.
func unexplainedStatusChange(o *order.Order, events []Event) (Event, bool) {
	if len(events) == 0 {
		return Event{}, false
	}

	last := events[len(events)-1]
	if !o.UpdatedAt().After(last.Timestamp) {
		return Event{}, false
	}
	if timeEqualsPtr(o.UpdatedAt(), o.StartedAt()) || timeEqualsPtr(o.UpdatedAt(), o.CompletedAt()) {
		return Event{}, false
	}

	explained := lastExplainedStatus(events)
	if explained == o.Status().String() {
		return Event{}, false
	}

	return newEvent(TypeStatusUpdated, o.ID().String(), o.UpdatedAt(),
		"Status atualizado", "",
		map[string]string{
			DetailFromStatus: explained,
			DetailToStatus:   o.Status().String(),
			DetailStatus:     o.Status().String(),
		}), true
}

// lastExplainedStatus scans the sorted trail backwards for the most recent
// event that carries a resulting order status.
func lastExplainedStatus(events []Event) string {
	for i := len(events) - 1; i >= 0; i-- {
		if s, ok := events[i].Details[DetailStatus]; ok {
			return s
		}
	}
	return ""
}

func actorFromOrder(o *order.Order) string {
	if o.DriverID() == nil {
		return ""
	}
	return o.DriverID().String()
}

func timeEqualsPtr(t time.Time, p *time.Time) bool {
	return p != nil && t.Equal(*p)
}
