package relay

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/timewall-relay/postback-relay/internal/config"
	"github.com/timewall-relay/postback-relay/internal/notifier"
)

// testMessagePrefix starts every synthetic message sent by TestPostback.
const testMessagePrefix = "TEST:postback-relay:"

// StatusController serves the informational and debug endpoints.
type StatusController struct {
	notifier Notifier
	settings *config.Settings
	logger   zerolog.Logger
}

// NewStatusController creates a new StatusController.
func NewStatusController(n Notifier, settings *config.Settings, logger zerolog.Logger) *StatusController {
	return &StatusController{
		notifier: n,
		settings: settings,
		logger:   logger,
	}
}

// Root returns a short status line.
func (s *StatusController) Root(c *fiber.Ctx) error {
	return c.SendString("Timewall/Telegram postback relay is online!")
}

// Health godoc
// @Summary      Relay health
// @Description  Reports the Telegram connection state and configuration.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *StatusController) Health(c *fiber.Ctx) error {
	status := s.notifier.Status()
	overall := "ok"
	if status.State != notifier.Connected {
		overall = "degraded"
	}
	return c.JSON(HealthResponse{
		Status:           overall,
		Telegram:         status.State.String(),
		BotUsername:      status.Username,
		SecretConfigured: s.settings.SecretConfigured(),
		GroupID:          s.settings.TelegramGroupID,
		Port:             s.settings.Port,
	})
}

// TestPostback godoc
// @Summary      Send a test message
// @Description  Sends a synthetic message to the Telegram group. Only registered when ENABLE_TEST_POSTBACK is set.
// @Tags         Status
// @Produce      plain
// @Success      200  {string}  string  "1"
// @Failure      500  {string}  string  "Internal Server Error"
// @Failure      503  {string}  string  "Telegram service unavailable"
// @Router       /test-postback [get]
func (s *StatusController) TestPostback(c *fiber.Ctx) error {
	if !s.notifier.IsConnected() {
		return unavailable(notifier.ErrNotConnected)
	}
	text := testMessagePrefix + time.Now().UTC().Format(time.RFC3339)
	if _, err := s.notifier.Send(c.UserContext(), text); err != nil {
		s.logger.Error().Err(err).Msg("Failed to send test message")
		return sendError(err)
	}
	s.logger.Info().Str("message", text).Msg("Test message sent")
	return c.SendString("1")
}
