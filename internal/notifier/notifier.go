//go:generate go tool mockgen -source=notifier.go -destination=notifier_mock_test.go -package=notifier
package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/timewall-relay/postback-relay/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// DefaultRetryDelay is the fixed delay between reconnect attempts.
const DefaultRetryDelay = 10 * time.Second

// ErrClosed is returned by Connect after Close.
const ErrClosed = constError("notifier is closed")

// BotClient is an authenticated session with the messaging provider.
type BotClient interface {
	// SendMessage posts text to chatID and returns the provider's message id.
	SendMessage(ctx context.Context, chatID, text string) (int, error)
	// Username is the bot account name confirmed during the identity check.
	Username() string
}

// Dialer creates a BotClient for token, verifying the token with the provider.
type Dialer func(ctx context.Context, token string) (BotClient, error)

// State is the connection state of a Notifier.
type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Config configures the outbound bot channel.
type Config struct {
	Token      string
	GroupID    string
	RetryDelay time.Duration
}

// Status is a point-in-time view of the notifier for health reporting.
type Status struct {
	State      State
	Username   string
	Configured bool
}

// Notifier owns the single outbound channel to the chat group.
// A failed connection is retried after a fixed delay until it succeeds.
type Notifier struct {
	cfg    Config
	dial   Dialer
	logger *zerolog.Logger
	dials  singleflight.Group

	mu         sync.Mutex
	state      State
	client     BotClient
	generation uint64
	retry      *time.Timer
	closed     bool
}

// New creates a disconnected Notifier. Call Connect to establish the session.
func New(cfg Config, dial Dialer, logger *zerolog.Logger) *Notifier {
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	return &Notifier{
		cfg:    cfg,
		dial:   dial,
		logger: logger,
	}
}

// Configured reports whether a bot token and group id were provided.
func (n *Notifier) Configured() bool {
	return n.cfg.Token != "" && n.cfg.GroupID != ""
}

// Connect dials the bot and confirms its identity. Without a token or group
// id the notifier stays disconnected and Connect returns nil. On failure one
// retry is scheduled after the retry delay. Concurrent calls share one dial.
func (n *Notifier) Connect(ctx context.Context) error {
	if !n.Configured() {
		n.logger.Warn().Msg("Telegram is not configured, set TELEGRAM_TOKEN and TELEGRAM_GROUP_ID")
		return nil
	}
	_, err, _ := n.dials.Do("connect", func() (any, error) {
		return nil, n.connect(ctx)
	})
	return err
}

func (n *Notifier) connect(ctx context.Context) error {
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return ErrClosed
	}

	client, err := n.dial(ctx, n.cfg.Token)

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrClosed
	}
	if err != nil {
		metrics.NotifierConnectAttempts.WithLabelValues("failure").Inc()
		n.setDisconnectedLocked()
		n.scheduleRetryLocked()
		n.logger.Error().Err(err).Dur("retry_in", n.cfg.RetryDelay).Msg("Failed to connect Telegram bot")
		return fmt.Errorf("failed to connect bot: %w", err)
	}

	metrics.NotifierConnectAttempts.WithLabelValues("success").Inc()
	metrics.NotifierConnected.Set(1)
	n.state = Connected
	n.client = client
	n.generation++
	n.stopRetryLocked()
	n.logger.Info().Str("bot", client.Username()).Str("group_id", n.cfg.GroupID).Msg("Telegram bot connected")
	return nil
}

// IsConnected reports whether a bot session is established.
func (n *Notifier) IsConnected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state == Connected
}

// Status returns the current connection state.
func (n *Notifier) Status() Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	status := Status{State: n.state, Configured: n.Configured()}
	if n.client != nil {
		status.Username = n.client.Username()
	}
	return status
}

// Send posts text to the configured group. Errors from the bot client are
// returned as-is; a conflict error also drops the session and schedules a
// reconnect.
func (n *Notifier) Send(ctx context.Context, text string) (int, error) {
	n.mu.Lock()
	client, generation, state := n.client, n.generation, n.state
	n.mu.Unlock()
	if state != Connected || client == nil {
		return 0, ErrNotConnected
	}

	messageID, err := client.SendMessage(ctx, n.cfg.GroupID, text)
	if err != nil {
		if IsConflict(err) {
			n.dropSession(generation, err)
		}
		return 0, err
	}
	return messageID, nil
}

// Close disconnects and cancels any pending reconnect.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.setDisconnectedLocked()
	n.stopRetryLocked()
}

// dropSession disconnects if the session that failed is still the current one.
func (n *Notifier) dropSession(generation uint64, cause error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || n.state != Connected || n.generation != generation {
		return
	}
	n.logger.Warn().Err(cause).Dur("retry_in", n.cfg.RetryDelay).Msg("Telegram session conflict, reconnecting")
	n.setDisconnectedLocked()
	n.scheduleRetryLocked()
}

func (n *Notifier) setDisconnectedLocked() {
	metrics.NotifierConnected.Set(0)
	n.state = Disconnected
	n.client = nil
	n.generation++
}

// scheduleRetryLocked arms the reconnect timer unless one is already pending.
func (n *Notifier) scheduleRetryLocked() {
	if n.retry != nil || n.closed {
		return
	}
	var timer *time.Timer
	timer = time.AfterFunc(n.cfg.RetryDelay, func() {
		n.mu.Lock()
		if n.retry == timer {
			n.retry = nil
		}
		closed := n.closed
		n.mu.Unlock()
		if closed {
			return
		}
		_ = n.Connect(context.Background())
	})
	n.retry = timer
}

func (n *Notifier) stopRetryLocked() {
	if n.retry != nil {
		n.retry.Stop()
		n.retry = nil
	}
}
