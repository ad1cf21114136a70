package notifications

import (
	"errors"
	"fmt"

	"engagement_platform/configs"

	"github.com/bwmarrin/discordgo"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Notifier interface {
	Notify(text string) error
}

// NewNotifier fans messages out to every configured channel. With no channel
// configured messages are only logged.
func NewNotifier(telegram configs.Telegram, discord configs.Discord, logger *zap.SugaredLogger) (Notifier, error) {
	var notifiers []Notifier

	if telegram.Enabled() {
		bot, err := tgbotapi.NewBotAPI(telegram.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram bot: %w", err)
		}
		notifiers = append(notifiers, NewTelegramNotifier(bot, telegram.ChatID))
	}

	if discord.Enabled() {
		session, err := discordgo.New("Bot " + discord.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create discord session: %w", err)
		}
		notifiers = append(notifiers, NewDiscordNotifier(session, discord.ChannelID))
	}

	if len(notifiers) == 0 {
		logger.Warn("no notification channel configured")
		return &logNotifier{logger: logger}, nil
	}

	return NewMultiNotifier(notifiers...), nil
}

type multiNotifier struct {
	notifiers []Notifier
}

func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

// Notify tries every notifier and joins the failures.
func (n *multiNotifier) Notify(text string) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.Notify(text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type logNotifier struct {
	logger *zap.SugaredLogger
}

func (n *logNotifier) Notify(text string) error {
	n.logger.Infow("notification", "text", text)
	return nil
}
