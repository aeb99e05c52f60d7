// Package gsd is the typed client for the general-services PHP backend.
// Every domain read and write of the gateway goes through here: one POST
// per operation, JSON body, common {status, data, message} envelope.
package gsd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Provider is the concrete client. Services depend on the narrow
// per-concern interfaces below so tests can stub the backend.
type Provider struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

func New(endpoint string, timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		logger:     logger.Named("gsd_provider"),
	}
}

// BackendError is a failure the backend itself reported, i.e. an
// envelope with status != "success". Transport and decode failures are
// returned as plain wrapped errors.
type BackendError struct {
	Operation string
	Message   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend rejected operation %q: %s", e.Operation, e.Message)
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

type requestBody struct {
	Operation string      `json:"operation"`
	JSON      interface{} `json:"json,omitempty"`
}

// call performs one backend operation. out may be nil for write
// operations whose response carries no data.
func (p *Provider) call(ctx context.Context, operation string, payload interface{}, out interface{}) error {
	reqBytes, err := json.Marshal(requestBody{Operation: operation, JSON: payload})
	if err != nil {
		return fmt.Errorf("failed to encode request for %q: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBytes))
	if err != nil {
		return fmt.Errorf("failed to build request for %q: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request for %q failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned %s for operation %q", resp.Status, operation)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response for %q: %w", operation, err)
	}

	if env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = "operation failed"
		}
		p.logger.Warn("backend reported failure",
			zap.String("operation", operation),
			zap.String("message", msg),
		)
		return &BackendError{Operation: operation, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to parse data for %q: %w", operation, err)
		}
	}
	return nil
}
