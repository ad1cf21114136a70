package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"engagement_platform/configs"
	"engagement_platform/internal/db"
	"engagement_platform/internal/db/repositories"
	"engagement_platform/internal/di"
	tgbot "engagement_platform/internal/tg_bot"
	"engagement_platform/internal/tg_bot/commands"
	"engagement_platform/internal/tg_bot/handlers"
)

func main() {
	config, err := configs.LoadElectionBotConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	logger.Info("starting bot")
	electionRepository := repositories.NewElectionRepository(database)
	now := func() time.Time { return time.Now().UTC() }

	tgbot.NewBot(
		handlers.NewElectionBotCommandHandler(
			config.Telegram.OperatorIDs,
			logger,
			[]commands.Command{
				commands.NewStartCommand(config.App),
				commands.NewOpenElectionsCommand(electionRepository, now, logger),
				commands.NewElectionCommand(electionRepository, now, logger),
			},
		),
	).Start(ctx, config, logger)
}
