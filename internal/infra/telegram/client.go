// internal/infra/telegram/client.go
package telegram

import (
	"fmt"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the domain telegram.Client interface using the
// gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot    *telebot.Bot
	logger *logrus.Entry
}

func NewTelebotAdapter(b *telebot.Bot, logger *logrus.Entry) *TelebotAdapter {
	return &TelebotAdapter{bot: b, logger: logger}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string) error {
	if _, err := tba.bot.Send(telebot.ChatID(recipientChatID), text); err != nil {
		return fmt.Errorf("%w: %v", domainTelegram.ErrSendFailure, err)
	}
	tba.logger.WithField("chat_id", recipientChatID).Infof("Notification sent: %s", text)
	return nil
}
