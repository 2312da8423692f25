package telegram_client

import (
	"context"
	"os"
	"strings"

	tgBotApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"twitch_live_notifier/internal/models"
)

type TelegramClient struct {
	bot    *tgBotApi.BotAPI
	chatID int64
}

func NewTelegramClient(chatID int64) (*TelegramClient, error) {
	bot, err := tgBotApi.NewBotAPI(os.Getenv("TELEGRAM_API_TOKEN"))
	if err != nil {
		return nil, errors.Wrap(err, "NewBotAPI")
	}

	return &TelegramClient{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// SendStreamCard posts a new live notification and returns its message id.
func (tc *TelegramClient) SendStreamCard(ctx context.Context, card models.StreamCard) (messageID int, err error) {

	msg := tgBotApi.NewMessage(tc.chatID, renderCardHTML(card))
	msg.ParseMode = tgBotApi.ModeHTML

	sent, err := tc.bot.Send(msg)
	if err != nil {
		return 0, errors.Wrap(err, "Send")
	}

	return sent.MessageID, nil
}

// EditStreamCard replaces the content of an already-posted notification.
// A message deleted in the chat surfaces as models.ErrMessageNotFound.
func (tc *TelegramClient) EditStreamCard(ctx context.Context, messageID int, card models.StreamCard) error {

	edit := tgBotApi.NewEditMessageText(tc.chatID, messageID, renderCardHTML(card))
	edit.ParseMode = tgBotApi.ModeHTML

	_, err := tc.bot.Send(edit)
	if err != nil {
		if strings.Contains(err.Error(), "message to edit not found") {
			return models.ErrMessageNotFound
		}
		return errors.Wrap(err, "Send")
	}

	return nil
}
