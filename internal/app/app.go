package app

import (
	"fmt"
	"net/http"

	_ "github.com/DIMO-Network/messenger-relay/docs" // Import Swagger docs
	"github.com/DIMO-Network/messenger-relay/internal/clients/messenger"
	"github.com/DIMO-Network/messenger-relay/internal/clients/responder"
	"github.com/DIMO-Network/messenger-relay/internal/config"
	"github.com/DIMO-Network/messenger-relay/internal/controllers/webhook"
	"github.com/DIMO-Network/messenger-relay/internal/services/history"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the outbound clients and history store and returns the public web app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if missing := settings.MissingRequired(); len(missing) > 0 {
		logger.Warn().Strs("missing", missing).Msg("Running without required settings; affected requests will fail")
	}

	httpClient := &http.Client{
		Timeout: settings.HTTPTimeout,
	}

	responderClient := responder.New(settings.AIEndpointURL, httpClient)
	messengerClient, err := messenger.New(settings.GraphAPIURL, settings.GraphAPIVersion, settings.PageAccessToken, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create messenger client: %w", err)
	}

	store := history.NewStore(settings.HistoryTTL)

	return CreateFiberApp(logger, settings, responderClient, messengerClient, store), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings,
	aiResponder webhook.Responder,
	sender webhook.Messenger,
	store webhook.HistoryStore) *fiber.App {
	logger.Info().Msg("Starting Messenger Relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Messenger Relay!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(settings.VerifyToken, aiResponder, sender, store)
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.Verify)
	app.Post("/webhook", webhook.SignatureMiddleware(settings.AppSecret), webhookController.HandleEvent)
	app.All("/webhook", webhookController.MethodNotAllowed)

	return app
}
