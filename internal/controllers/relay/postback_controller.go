//go:generate go tool mockgen -source=postback_controller.go -destination=postback_controller_mock_test.go -package=relay
package relay

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/timewall-relay/postback-relay/internal/metrics"
	"github.com/timewall-relay/postback-relay/internal/notifier"
	"github.com/timewall-relay/postback-relay/internal/postback"
)

// Notifier is the outbound chat channel postbacks are relayed to.
type Notifier interface {
	Connect(ctx context.Context) error
	IsConnected() bool
	Send(ctx context.Context, text string) (int, error)
	Status() notifier.Status
}

// ReplayCache counts how often a transaction id has been forwarded.
type ReplayCache interface {
	Record(transactionID string) int
}

// PostbackController validates rewards platform postbacks and relays them to the chat group.
type PostbackController struct {
	notifier Notifier
	replays  ReplayCache
	secret   string
	logger   zerolog.Logger
}

// NewPostbackController creates a new PostbackController.
func NewPostbackController(n Notifier, replays ReplayCache, secret string, logger zerolog.Logger) *PostbackController {
	return &PostbackController{
		notifier: n,
		replays:  replays,
		secret:   secret,
		logger:   logger,
	}
}

// HandlePostback godoc
// @Summary      Receive a Timewall postback
// @Description  Validates the postback signature and relays "{CREDIT|CHARGEBACK}:{userId}:{amount}" to the Telegram group. Responds "1" once the message is sent.
// @Tags         Postbacks
// @Produce      plain
// @Param        userid          query     string  true  "User id, optionally prefixed with telegram_ or discord_"
// @Param        revenue         query     number  true  "Revenue in USD"
// @Param        transactionid   query     string  true  "Transaction id"
// @Param        hash            query     string  true  "sha256(userid + revenue + secret)"
// @Param        type            query     string  true  "chargeback or credit"
// @Param        currencyAmount  query     number  true  "Amount in USD reported to the group"
// @Success      200  {string}  string  "1"
// @Failure      400  {string}  string  "Missing or invalid parameters"
// @Failure      403  {string}  string  "Invalid hash"
// @Failure      500  {string}  string  "Internal Server Error"
// @Failure      503  {string}  string  "Telegram service unavailable"
// @Router       /timewall-postback [get]
func (p *PostbackController) HandlePostback(c *fiber.Ctx) (err error) {
	defer func() {
		metrics.PostbackRequests.WithLabelValues(outcome(err)).Inc()
	}()

	logger := p.logger.With().Str("postback_id", uuid.NewString()).Logger()
	query := c.Queries()
	logger.Info().Interface("query", query).Msg("Postback received")

	event, err := postback.ParseEvent(query)
	if err != nil {
		logger.Warn().Err(err).Msg("Rejected postback with missing or invalid parameters")
		return invalidParameters(err)
	}

	if err := event.Verify(p.secret); err != nil {
		logger.Warn().Str("user_id", event.UserID).Str("transaction_id", event.TransactionID).Msg("Rejected postback with invalid hash")
		return invalidSignature(err)
	}

	if !postback.HasPlatformPrefix(event.UserID) {
		logger.Warn().Str("user_id", event.UserID).Msg("User id has no platform prefix, assuming Telegram")
	}

	text := event.Message()
	ctx := c.UserContext()
	if err := p.ensureConnected(ctx, logger); err != nil {
		return err
	}
	messageID, err := p.notifier.Send(ctx, text)
	if err != nil {
		logger.Error().Err(err).Str("message", text).Msg("Failed to relay postback")
		return sendError(err)
	}

	if count := p.replays.Record(event.TransactionID); count > 1 {
		metrics.PostbackReplays.Inc()
		logger.Warn().Str("transaction_id", event.TransactionID).Int("count", count).Msg("Transaction forwarded again")
	}
	logger.Info().Str("message", text).Int("message_id", messageID).Msg("Postback relayed")
	return c.SendString("1")
}

// ensureConnected makes one reconnect attempt when the notifier is down.
func (p *PostbackController) ensureConnected(ctx context.Context, logger zerolog.Logger) error {
	if p.notifier.IsConnected() {
		return nil
	}
	if err := p.notifier.Connect(ctx); err != nil {
		logger.Warn().Err(err).Msg("Reconnect attempt failed")
	}
	if !p.notifier.IsConnected() {
		return unavailable(notifier.ErrNotConnected)
	}
	return nil
}
