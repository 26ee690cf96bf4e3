package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Default timeout for Bot API requests
const defaultTelegramTimeout = 15 * time.Second

// telegramClient sends messages through the Telegram Bot API.
type telegramClient struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramDialer returns a Dialer for the Telegram Bot API. apiEndpoint is a
// format string taking the token and the method name; empty uses the public API.
func NewTelegramDialer(apiEndpoint string, client *http.Client) Dialer {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTelegramTimeout}
	}
	return func(ctx context.Context, token string) (BotClient, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// NewBotAPIWithClient calls getMe, which validates the token.
		bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, client)
		if err != nil {
			return nil, fmt.Errorf("failed to verify bot token: %w", classifyAPIError(err))
		}
		return &telegramClient{bot: bot}, nil
	}
}

// SendMessage posts text to a numeric chat id or an @channel username.
func (t *telegramClient) SendMessage(ctx context.Context, chatID, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var msg tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(id, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(chatID, text)
	}

	sent, err := t.bot.Send(msg)
	if err != nil {
		return 0, classifyAPIError(err)
	}
	return sent.MessageID, nil
}

func (t *telegramClient) Username() string {
	return t.bot.Self.UserName
}

// classifyAPIError tags Bot API 409 responses with ErrConflict.
func classifyAPIError(err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
