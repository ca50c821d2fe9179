// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order is created on intake with status New, forwarded to the external
// courier by a background dispatch attempt, and ends that attempt in either
// SentToCourier or FailedToSend. Operators can re-trigger delivery, which moves
// the order to Retrying before a fresh attempt runs. Orders are never deleted.
//
// Customer and items payloads are opaque to this service: they are captured as
// raw JSON on intake and forwarded to the courier verbatim.
package order
