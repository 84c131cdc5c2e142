package telegram

import (
	"errors"
	"fmt"

	"gopkg.in/telebot.v3"

	"github.com/kotche/reminder-bot/internal/model"
)

type BotSender struct {
	bot *telebot.Bot
}

func NewBotSender(bot *telebot.Bot) *BotSender {
	return &BotSender{bot: bot}
}

func (s *BotSender) SendMessage(chatID int64, text string) error {
	if _, err := s.bot.Send(&telebot.User{ID: chatID}, text); err != nil {
		if errors.Is(err, telebot.ErrChatNotFound) {
			return model.ErrChatNotFound
		}
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}
