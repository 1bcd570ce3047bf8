package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DIMO-Network/messenger-relay/internal/services/history"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// ResponderFailureCode is the code returned when the AI backend could not produce a reply.
	ResponderFailureCode = -2

	defaultTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxErrorBodySize = 1024
	// Maximum reply body size accepted from the backend
	maxReplyBodySize = 4 << 20
)

// ErrEndpointNotConfigured is returned by every call when no AI endpoint URL is set.
var ErrEndpointNotConfigured = errors.New("AI endpoint URL is not configured")

var validate = validator.New()

// Request is the payload sent to the AI backend.
type Request struct {
	Message string          `json:"message"`
	History history.History `json:"history"`
}

// Reply is the payload returned by the AI backend.
type Reply struct {
	// Response is the text to relay back to the sender.
	Response string `json:"response" validate:"required"`
	// History is the updated conversation history, including the latest turn.
	History history.History `json:"history" validate:"required"`
}

// Client calls the external AI backend.
type Client struct {
	endpointURL string
	client      *http.Client
}

// New creates a Client for endpointURL. An empty endpointURL is allowed;
// every call then fails with ErrEndpointNotConfigured.
func New(endpointURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &Client{
		endpointURL: endpointURL,
		client:      client,
	}
}

// GetResponse sends message and the sender's prior history to the AI backend and returns its reply.
func (c *Client) GetResponse(ctx context.Context, message string, hist history.History) (*Reply, error) {
	if c.endpointURL == "" {
		return nil, richerrors.Error{
			Code: ResponderFailureCode,
			Err:  ErrEndpointNotConfigured,
		}
	}
	if hist == nil {
		hist = history.History{}
	}

	body, err := json.Marshal(Request{Message: message, History: hist})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal responder request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, richerrors.Error{
			Code: ResponderFailureCode,
			Err:  fmt.Errorf("failed to create responder request: %w", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DIMO-Messenger-Relay/1.0")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, richerrors.Error{
			Code: ResponderFailureCode,
			Err:  fmt.Errorf("failed to POST to responder: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, richerrors.Error{
			Code: ResponderFailureCode,
			Err:  fmt.Errorf("responder returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var reply Reply
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBodySize)).Decode(&reply); err != nil {
		return nil, richerrors.Error{
			Code: ResponderFailureCode,
			Err:  fmt.Errorf("failed to decode responder reply: %w", err),
		}
	}
	if err := validate.Struct(&reply); err != nil {
		return nil, richerrors.Error{
			Code: ResponderFailureCode,
			Err:  fmt.Errorf("invalid responder reply: %w", err),
		}
	}

	return &reply, nil
}
