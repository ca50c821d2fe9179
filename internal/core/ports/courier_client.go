package ports

import (
	"context"
	"encoding/json"
	"fmt"
)

// DispatchRequest is the outbound payload for one dispatch attempt.
// Only intake data is forwarded; status, tracking, and error fields never
// leave the service.
type DispatchRequest struct {
	OrderID  string          `json:"order_id"`
	Customer json.RawMessage `json:"customer"`
	Items    json.RawMessage `json:"items"`
}

// DispatchResult is the outcome of an accepted dispatch attempt.
type DispatchResult struct {
	// TrackingID is the identifier under which the courier tracks the
	// delivery. When the courier's response does not contain one, the
	// client synthesizes "<order_id>-track".
	TrackingID string
}

// RejectionError indicates the courier endpoint answered with a non-2xx
// status. The raw response body is preserved as the failure detail recorded
// on the order.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("courier rejected dispatch: status %d: %s", e.StatusCode, e.Body)
}

// CourierClient sends order payloads to the external courier endpoint.
//
// Send performs exactly one attempt with a bounded timeout. A non-2xx
// response yields a *RejectionError; timeouts, connection failures, and other
// faults yield a plain transport error. Implementations never retry.
type CourierClient interface {
	Send(ctx context.Context, req DispatchRequest) (DispatchResult, error)
}
