package notify

import (
	"context"

	"github.com/mymmrac/telego"
)

// Telegram sends notifications to a fixed chat via a Telegram bot
type Telegram struct {
	bot    *telego.Bot
	chatID int64
}

// NewTelegram creates a Telegram notifier. The token is validated
// against the Bot API on construction.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Send(ctx context.Context, text string) error {
	_, err := t.bot.SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: t.chatID},
		Text:   text,
	})
	return err
}
