package app

import (
	"context"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	_ "github.com/timewall-relay/postback-relay/docs" // Import Swagger docs
	"github.com/timewall-relay/postback-relay/internal/config"
	"github.com/timewall-relay/postback-relay/internal/controllers/relay"
	"github.com/timewall-relay/postback-relay/internal/notifier"
	"github.com/timewall-relay/postback-relay/internal/services/replaycache"
)

const replayCleanupInterval = 10 * time.Minute

// CreateServers builds the notifier, starts its first connection attempt and returns the HTTP app.
// The returned notifier must be closed on shutdown.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, *notifier.Notifier) {
	bot := notifier.New(notifier.Config{
		Token:      settings.TelegramToken,
		GroupID:    settings.TelegramGroupID,
		RetryDelay: settings.TelegramReconnectDelay,
	}, notifier.NewTelegramDialer(settings.TelegramAPIEndpoint, nil), &logger)

	// A failed first attempt keeps retrying in the background.
	if err := bot.Connect(ctx); err != nil {
		logger.Warn().Err(err).Msg("Telegram bot not connected at startup")
	}
	if !settings.SecretConfigured() {
		logger.Warn().Msg("TIMEWALL secret is not configured, postback signatures will not match")
	}

	replays := replaycache.New(settings.ReplayWindow, replayCleanupInterval)
	return CreateFiberApp(logger, bot, replays, settings), bot
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, bot relay.Notifier, replays relay.ReplayCache, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Postback Relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          relay.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	postbackController := relay.NewPostbackController(bot, replays, settings.TimewallSecret, logger)
	statusController := relay.NewStatusController(bot, settings, logger)
	logger.Info().Msg("Registering routes...")

	app.Get("/", statusController.Root)
	app.Get("/health", statusController.Health)
	app.Get("/timewall-postback", postbackController.HandlePostback)
	if settings.EnableTestPostback {
		app.Get("/test-postback", statusController.TestPostback)
	}

	return app
}
