// Package notify pushes submitted orders to the shop's Telegram chat.
package notify

import (
	"context"
	"fmt"

	"dimzia-storefront/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends the order summary to a fixed chat. It satisfies
// orders.Notifier.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authenticates the bot token. Returns an error when the token
// is rejected; callers leave the notifier nil to disable notifications.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) NotifyOrder(_ context.Context, order *models.Order, summary string) error {
	msg := tgbotapi.NewMessage(t.chatID, summary)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send order #%d notification: %w", order.OrderNumber, err)
	}
	return nil
}
