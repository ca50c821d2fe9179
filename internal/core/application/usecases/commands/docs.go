// Package commands contains business operations that modify system state.
// Implements the Command pattern for the write side of the order lifecycle:
// intake (CreateOrder), operator-triggered resend (ResendOrder), and the
// background courier forwarding attempt (DispatchOrder).
//
// All commands follow a consistent pattern: a validated command object built
// through its constructor, and a handler that takes the store and any other
// ports it needs through its own constructor.
package commands
