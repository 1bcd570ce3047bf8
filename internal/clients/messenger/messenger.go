package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// SendFailureCode is the code returned when a message could not be delivered to the send API.
	SendFailureCode = -3

	// MessagingTypeResponse marks a message as a reply to a user-initiated message.
	MessagingTypeResponse = "RESPONSE"

	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 1024
)

// SendRequest is the body of a send API call.
type SendRequest struct {
	Recipient     Recipient `json:"recipient"`
	Message       Message   `json:"message"`
	MessagingType string    `json:"messaging_type"`
}

// Recipient identifies who receives a message.
type Recipient struct {
	ID string `json:"id"`
}

// Message is a text message.
type Message struct {
	Text string `json:"text"`
}

// Client delivers messages through the messaging platform's send API.
type Client struct {
	endpoint    string
	accessToken string
	client      *http.Client
}

// New creates a Client posting to {baseURL}/{version}/me/messages.
func New(baseURL, version, accessToken string, client *http.Client) (*Client, error) {
	endpoint, err := url.JoinPath(strings.TrimRight(baseURL, "/"), version, "me", "messages")
	if err != nil {
		return nil, fmt.Errorf("invalid send API URL %q: %w", baseURL, err)
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &Client{
		endpoint:    endpoint,
		accessToken: accessToken,
		client:      client,
	}, nil
}

// SendMessage sends text to recipientID.
func (c *Client) SendMessage(ctx context.Context, recipientID, text string) error {
	body, err := json.Marshal(SendRequest{
		Recipient:     Recipient{ID: recipientID},
		Message:       Message{Text: text},
		MessagingType: MessagingTypeResponse,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create send request: %w", err)
	}
	query := req.URL.Query()
	query.Set("access_token", c.accessToken)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error carries the full URL, including the access token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to POST to send API: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("send API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}
	return nil
}
