// Package courier provides the HTTP client for the external courier endpoint.
//
// The courier is an opaque remote service: the client POSTs the order payload
// as JSON, optionally with a bearer credential, and interprets only the
// response status and an optional tracking_id field in the body. Each call is
// exactly one attempt with a fixed timeout; retry policy lives with the
// operator, not here.
package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderagent/internal/core/ports"
)

// requestTimeout bounds one dispatch attempt end to end.
const requestTimeout = 15 * time.Second

// Client sends order payloads to the courier endpoint over HTTP.
// Implements ports.CourierClient.
type Client struct {
	endpointURL string
	apiKey      string
	httpClient  *http.Client
}

// NewClient creates a courier client for the given endpoint.
// An empty apiKey disables the Authorization header.
func NewClient(endpointURL, apiKey string) *Client {
	return &Client{
		endpointURL: endpointURL,
		apiKey:      apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// trackingResponse is the structured body shape the client understands.
// Anything else in the response is ignored.
type trackingResponse struct {
	TrackingID string `json:"tracking_id"`
}

// Send performs one dispatch attempt.
//
// A 2xx response is a success; the tracking id is taken from the response
// body when it is a structured object containing one, and synthesized as
// "<order_id>-track" otherwise. A non-2xx response yields a
// *ports.RejectionError carrying the raw body text. Timeouts and connection
// failures yield plain transport errors.
func (c *Client) Send(ctx context.Context, req ports.DispatchRequest) (ports.DispatchResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("encode dispatch payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("create dispatch request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("courier call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("read courier response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.DispatchResult{}, &ports.RejectionError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return ports.DispatchResult{
		TrackingID: extractTrackingID(body, req.OrderID),
	}, nil
}

// extractTrackingID pulls the tracking id out of a structured response body,
// falling back to the deterministic "<order_id>-track" synthesis when the
// body is not an object or carries no tracking_id.
func extractTrackingID(body []byte, orderID string) string {
	var parsed trackingResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.TrackingID != "" {
		return parsed.TrackingID
	}
	return orderID + "-track"
}
