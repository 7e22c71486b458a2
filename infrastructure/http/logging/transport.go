// ABOUTME: Outbound request logging for the upstream HTTP stack
// ABOUTME: Logs each real upstream call with the inbound request ID when one is present

package logging

import (
	"net/http"
	"time"

	"gist-search-api/core/domain"
	"gist-search-api/core/interfaces"
	"github.com/google/uuid"
)

// RoundTripper implements http.RoundTripper with logging. It sits beneath
// the response cache, so only real upstream calls are logged.
type RoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// Outbound requests share the inbound request ID when there is one
	requestID := domain.RequestIDFromContext(req.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"host":       req.Host,
	})

	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.Logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}
