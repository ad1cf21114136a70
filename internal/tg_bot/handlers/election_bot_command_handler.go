package handlers

import (
	"engagement_platform/internal/tg_bot/commands"
	tgbot "engagement_platform/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type electionBotCommandHandler struct {
	operatorIDs map[int64]bool
	logger      *zap.SugaredLogger

	commands []commands.Command
}

// NewElectionBotCommandHandler answers commands of the given operators only.
func NewElectionBotCommandHandler(
	operatorIDs []int64,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	operators := make(map[int64]bool, len(operatorIDs))
	for _, id := range operatorIDs {
		operators[id] = true
	}

	return &electionBotCommandHandler{
		operatorIDs: operators,
		logger:      logger,
		commands:    commands,
	}
}

func (h *electionBotCommandHandler) Handle(update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	if message == nil || message.From == nil {
		h.logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID

	if !h.operatorIDs[message.From.ID] {
		h.logger.Warnw("received message from unknown user", "user_id", message.From.ID, "username", message.From.UserName)
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Vous n'êtes pas autorisé à utiliser ce bot.")}
	}

	if !message.IsCommand() {
		h.logger.Infow("received message without command", "user_id", message.From.ID)
		return []tgbotapi.Chattable{}
	}

	h.logger.Infow("received command", "command", message.Command(), "user_id", message.From.ID)
	return h.tryToHandleCommand(message.Command(), tgbot.CommandArguments(message), chatID)
}

func (h *electionBotCommandHandler) tryToHandleCommand(command, arguments string, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(arguments, chatID)
		}
	}

	h.logger.Warnf("received unknown command: %s", command)
	return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Commande inconnue")}
}
