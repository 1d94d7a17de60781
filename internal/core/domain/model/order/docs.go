// Package order contains the Order aggregate: a shippable unit owned by one
// tenant and carried by at most one active delivery at a time.
//
// The aggregate owns the order side of the lifecycle state machine:
//
//	SEM_ROTA ──> EM_ROTA_AGUARDANDO_LIBERACAO ──> EM_ROTA ──> EM_ENTREGA ──> ENTREGUE
//	    ^                    │        ^               │                          │
//	    └────────────────────┘        └───────────────┘                    NAO_ENTREGUE
//
// Orders move to EM_ROTA_AGUARDANDO_LIBERACAO or EM_ROTA when batched into a
// delivery, back to SEM_ROTA when that delivery is rejected before release,
// and through EM_ENTREGA to a terminal state as the driver works the route.
// All transitions are validated; illegal ones surface as StateConflictError.
package order
