package order

import (
	"fmt"

	"orderagent/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// dispatch workflow.
//
// State transitions:
//
//	New ──────┬──> SentToCourier ──┐
//	          │                    │
//	          └──> FailedToSend ───┤
//	                               │
//	Retrying ─┬──> SentToCourier   │
//	          │                    │
//	          └──> FailedToSend    │
//	                               │
//	(any valid status) <── Retry ──┘
//
// A dispatch attempt starts from New or Retrying and ends in SentToCourier or
// FailedToSend. An operator-triggered resend moves any order to Retrying.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned on intake, before the first
	// dispatch attempt has completed.
	New

	// SentToCourier indicates the courier endpoint accepted the order.
	// A tracking identifier is recorded alongside this status.
	SentToCourier

	// FailedToSend indicates the last dispatch attempt failed, either by
	// remote rejection or transport fault. The failure detail is recorded
	// on the order.
	FailedToSend

	// Retrying indicates an operator requested a resend and a fresh
	// dispatch attempt is pending or in flight.
	Retrying
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the wire and persistence encoding.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		New:           "new",
		SentToCourier: "sent_to_courier",
		FailedToSend:  "failed_to_send",
		Retrying:      "retrying",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:           "new",
		SentToCourier: "sent_to_courier",
		FailedToSend:  "failed_to_send",
		Retrying:      "retrying",
	}
}

// StatusFromString parses the persisted string encoding back into a Status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are New, SentToCourier, FailedToSend, and Retrying.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire encoding of the status ("new", "sent_to_courier",
// "failed_to_send", "retrying"). Invalid values return "unknown".
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDispatchable reports whether a dispatch attempt may start from this status.
// Attempts start only from New (first delivery) or Retrying (resend).
func (s Status) IsDispatchable() bool {
	return s == New || s == Retrying
}

// Send transitions the status to SentToCourier.
//
// Valid transitions:
//   - New -> SentToCourier (first attempt accepted)
//   - Retrying -> SentToCourier (resend accepted)
//
// Returns an error if the current status is not dispatchable.
func (s Status) Send() (Status, error) {
	if !s.IsDispatchable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark as sent", s.String()),
		)
	}

	return SentToCourier, nil
}

// Fail transitions the status to FailedToSend.
//
// Valid transitions:
//   - New -> FailedToSend (first attempt failed)
//   - Retrying -> FailedToSend (resend failed)
//
// Returns an error if the current status is not dispatchable.
func (s Status) Fail() (Status, error) {
	if !s.IsDispatchable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark as failed", s.String()),
		)
	}

	return FailedToSend, nil
}

// Retry transitions the status to Retrying.
//
// A resend is allowed from any valid status: an operator may re-trigger
// delivery whether the previous attempt succeeded, failed, or is still
// pending. Returns an error only for invalid status values.
func (s Status) Retry() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Retrying, nil
}
