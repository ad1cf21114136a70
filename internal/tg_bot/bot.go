package tgbot

import (
	"context"

	"engagement_platform/configs"
	"engagement_platform/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type bot struct {
	handler handlers.CommandHandler
}

type Bot interface {
	Start(ctx context.Context, config configs.ElectionBotConfig, logger *zap.SugaredLogger)
}

func NewBot(handler handlers.CommandHandler) Bot {
	return &bot{handler: handler}
}

func (b *bot) Start(ctx context.Context, config configs.ElectionBotConfig, logger *zap.SugaredLogger) {
	logger.Info("creating bot")
	bot, updates, err := b.createBot(config)
	if err != nil {
		logger.Fatalf("failed to create bot: %v", err)
	}
	logger.Infow("bot created", "username", bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			logger.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			for _, message := range b.handler.Handle(update) {
				if _, err := bot.Send(message); err != nil {
					logger.Errorf("failed to send message: %v", err)
				}
			}
		}
	}
}

func (b *bot) createBot(config configs.ElectionBotConfig) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	bot, err := tgbotapi.NewBotAPI(config.Telegram.Token)
	if err != nil {
		return nil, nil, err
	}

	bot.Debug = config.App.IsDevEnvironment()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.Telegram.UpdateTimeout

	return bot, bot.GetUpdatesChan(u), nil
}
