// Package delivery contains the Delivery aggregate: a manifest grouping one
// or more orders for a single driver/vehicle trip.
//
// The aggregate owns the delivery side of the lifecycle state machine:
//
//	A_LIBERAR ──> INICIADO ──> FINALIZADO
//	    │  ^          │
//	    │  └──────────┘ (re-approval needed)
//	    └──> REJEITADO
//
// A delivery starts at A_LIBERAR when the rules validator flags it for
// manager approval, otherwise directly at INICIADO. Approval decisions are
// recorded as immutable Approval records; each decision also dictates the
// transition every carried order must make, which RecordApproval reports as
// an OrderEffect for the application layer to apply inside the same
// transaction.
//
// The freight value is computed once at creation and is immutable
// thereafter; re-computation requires creating a new delivery.
package delivery
