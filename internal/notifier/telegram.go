package notifier

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tazhate/ballotbot/config"
)

// Telegram posts messages to a single chat through the Bot API.
type Telegram struct {
	api             *tgbotapi.BotAPI
	chatID          int64
	channelUsername string
}

// NewTelegram prepares a client without calling getMe, so a run costs exactly
// one request.
func NewTelegram(cfg *config.Config) *Telegram {
	return NewTelegramWithClient(cfg, &http.Client{Timeout: cfg.HTTPTimeout})
}

func NewTelegramWithClient(cfg *config.Config, client tgbotapi.HTTPClient) *Telegram {
	api := &tgbotapi.BotAPI{
		Token:  cfg.TelegramToken,
		Client: client,
		Buffer: 100,
	}
	api.SetAPIEndpoint(cfg.APIEndpoint)

	return &Telegram{
		api:             api,
		chatID:          cfg.ChatID,
		channelUsername: cfg.ChannelUsername,
	}
}

// SendMessage sends text as Markdown with link previews disabled.
func (t *Telegram) SendMessage(text string) error {
	var msg tgbotapi.MessageConfig
	if t.channelUsername != "" {
		msg = tgbotapi.NewMessageToChannel(t.channelUsername, text)
	} else {
		msg = tgbotapi.NewMessage(t.chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
