package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	signatureHeader = "X-Hub-Signature-256"
	signaturePrefix = "sha256="
)

var validate = validator.New()

// validateEventPayload rejects page payloads that are missing the fields needed to relay a message.
func validateEventPayload(payload *EventPayload) error {
	if err := validate.Struct(payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid event payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	for i, entry := range payload.Entry {
		event, ok := entry.firstTextEvent()
		if ok && event.Sender.ID == "" {
			return richerrors.Error{
				ExternalMsg: fmt.Sprintf("Missing sender id in entry %d", i),
				Code:        fiber.StatusBadRequest,
			}
		}
	}
	return nil
}

// verifyToken reports whether token matches the configured verify token.
// An empty configured token never matches.
func verifyToken(expected, token string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1
}

// validSignature checks an X-Hub-Signature-256 header value against the HMAC-SHA256 of body.
func validSignature(body []byte, header, appSecret string) bool {
	sig, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(appSecret))
	_, _ = mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// SignatureMiddleware rejects event notifications whose X-Hub-Signature-256 header
// does not match the payload. The check is skipped when appSecret is empty.
func SignatureMiddleware(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if appSecret == "" {
			return c.Next()
		}
		if !validSignature(c.Body(), c.Get(signatureHeader), appSecret) {
			return richerrors.Error{
				ExternalMsg: "Invalid request signature",
				Code:        fiber.StatusForbidden,
			}
		}
		return c.Next()
	}
}
