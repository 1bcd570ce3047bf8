// Command echo-responder is a local stand-in for the AI backend.
// It answers every message with an echo and appends both turns to the history.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/DIMO-Network/messenger-relay/internal/clients/responder"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func echoHandler(c *fiber.Ctx) error {
	var req responder.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	zerolog.Ctx(c.UserContext()).Info().Str("message", req.Message).Int("history_len", len(req.History)).Msg("Echoing message")

	response := "You said: " + req.Message
	userTurn, err := json.Marshal(turn{Role: "user", Text: req.Message})
	if err != nil {
		return err
	}
	modelTurn, err := json.Marshal(turn{Role: "model", Text: response})
	if err != nil {
		return err
	}
	return c.JSON(responder.Reply{
		Response: response,
		History:  append(req.History.Clone(), userTurn, modelTurn),
	})
}

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "echo-responder").Logger()
	zerolog.DefaultContextLogger = &logger

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Post("/chat", echoHandler)

	logger.Info().Str("addr", *addr).Msg("Echo responder listening on /chat")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Echo responder failed")
	}
}
