package notifications

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	sender telegramSender
	chatID int64
}

func NewTelegramNotifier(sender telegramSender, chatID int64) Notifier {
	return &telegramNotifier{sender: sender, chatID: chatID}
}

func (n *telegramNotifier) Notify(text string) error {
	message := tgbotapi.NewMessage(n.chatID, text)
	message.DisableWebPagePreview = true

	if _, err := n.sender.Send(message); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
