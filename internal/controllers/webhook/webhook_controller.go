package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DIMO-Network/messenger-relay/internal/clients/responder"
	"github.com/DIMO-Network/messenger-relay/internal/services/history"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Responder produces an AI reply for a message and its conversation history.
type Responder interface {
	GetResponse(ctx context.Context, message string, hist history.History) (*responder.Reply, error)
}

// Messenger delivers text messages to a sender.
type Messenger interface {
	SendMessage(ctx context.Context, recipientID, text string) error
}

// HistoryStore holds conversation history per sender.
type HistoryStore interface {
	Get(ctx context.Context, senderID string) (history.History, error)
	Put(ctx context.Context, senderID string, h history.History) error
}

// WebhookController handles the messaging platform webhook.
type WebhookController struct {
	verifyToken string
	responder   Responder
	messenger   Messenger
	store       HistoryStore
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(verifyToken string, aiResponder Responder, sender Messenger, store HistoryStore) *WebhookController {
	return &WebhookController{
		verifyToken: verifyToken,
		responder:   aiResponder,
		messenger:   sender,
		store:       store,
	}
}

// Verify godoc
// @Summary      Verify webhook subscription
// @Description  Answers the platform's verification handshake by echoing the challenge when the mode is "subscribe" and the verify token matches.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Subscription mode, must be subscribe"
// @Param        hub.verify_token  query  string  true  "Verify token configured on the platform"
// @Param        hub.challenge     query  string  true  "Challenge to echo back"
// @Success      200  {string}  string  "The challenge value"
// @Failure      403  "Verification failed"
// @Router       /webhook [get]
func (w *WebhookController) Verify(c *fiber.Ctx) error {
	// fiber routes HEAD to GET handlers
	if c.Method() == fiber.MethodHead {
		return w.MethodNotAllowed(c)
	}
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	logger := zerolog.Ctx(c.UserContext())
	if mode != modeSubscribe || !verifyToken(w.verifyToken, token) {
		logger.Warn().Str("mode", mode).Msg("Webhook verification failed")
		return c.SendStatus(fiber.StatusForbidden)
	}

	logger.Info().Msg("Webhook verified")
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// HandleEvent godoc
// @Summary      Receive messaging events
// @Description  Relays the text of each entry's first messaging event to the AI backend and sends the reply to the sender. Conversation history is kept per sender.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        X-Hub-Signature-256  header  string        false  "sha256 HMAC of the body, required when an app secret is configured"
// @Param        request              body    EventPayload  true   "Webhook event"
// @Success      200  {string}  string  "EVENT_RECEIVED"
// @Failure      400  "Invalid event payload"
// @Failure      403  "Invalid request signature"
// @Failure      404  "Unsupported object type"
// @Failure      500  "Failed to deliver reply"
// @Router       /webhook [post]
func (w *WebhookController) HandleEvent(c *fiber.Ctx) error {
	var payload EventPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid event payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if payload.Object != ObjectPage {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := validateEventPayload(&payload); err != nil {
		return err
	}

	ctx := c.UserContext()
	for _, entry := range payload.Entry {
		event, ok := entry.firstTextEvent()
		if !ok {
			eventsTotal.WithLabelValues(outcomeSkipped).Inc()
			continue
		}
		if err := w.relay(ctx, event.Sender.ID, event.Message.Text); err != nil {
			return err
		}
	}

	return c.Status(fiber.StatusOK).SendString(EventReceived)
}

// MethodNotAllowed rejects every method other than GET and POST on the webhook path.
func (w *WebhookController) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).SendString("Method Not Allowed")
}

// relay forwards one message to the AI backend and sends the reply, or the fallback
// message when the backend or the reply delivery fails. History is only replaced
// after a successful reply was sent.
func (w *WebhookController) relay(ctx context.Context, senderID, text string) error {
	logger := zerolog.Ctx(ctx).With().Str("sender_id", senderID).Logger()
	logger.Debug().Str("text", text).Msg("Received message")

	hist, err := w.store.Get(ctx, senderID)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to load conversation history",
			Err:         fmt.Errorf("failed to get history: %w", err),
			Code:        fiber.StatusInternalServerError,
		}
	}

	start := time.Now()
	reply, err := w.responder.GetResponse(ctx, text, hist)
	responderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get AI response")
		return w.sendFallback(ctx, senderID)
	}

	if err := w.send(ctx, senderID, reply.Response); err != nil {
		logger.Error().Err(err).Msg("Failed to send AI response")
		return w.sendFallback(ctx, senderID)
	}
	if err := w.store.Put(ctx, senderID, reply.History); err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to store conversation history",
			Err:         fmt.Errorf("failed to put history: %w", err),
			Code:        fiber.StatusInternalServerError,
		}
	}
	eventsTotal.WithLabelValues(outcomeReplied).Inc()
	return nil
}

// sendFallback tells the sender the relay could not answer. History is left untouched.
func (w *WebhookController) sendFallback(ctx context.Context, senderID string) error {
	if err := w.send(ctx, senderID, FallbackMessage); err != nil {
		return err
	}
	eventsTotal.WithLabelValues(outcomeFallback).Inc()
	return nil
}

func (w *WebhookController) send(ctx context.Context, senderID, text string) error {
	if err := w.messenger.SendMessage(ctx, senderID, text); err != nil {
		eventsTotal.WithLabelValues(outcomeSendFailed).Inc()
		return richerrors.Error{
			ExternalMsg: "Failed to deliver reply",
			Err:         fmt.Errorf("failed to send message to %s: %w", senderID, err),
			Code:        fiber.StatusInternalServerError,
		}
	}
	return nil
}
