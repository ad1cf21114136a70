package commands

import (
	"fmt"
	"strings"
	"time"

	"engagement_platform/internal"
	"engagement_platform/internal/db/repositories"
	tgbot "engagement_platform/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const openElectionsCommandName = "open_elections"

type openElectionsCommand struct {
	electionRepository repositories.ElectionRepository
	now                func() time.Time
	logger             *zap.SugaredLogger
}

func NewOpenElectionsCommand(electionRepository repositories.ElectionRepository, now func() time.Time, logger *zap.SugaredLogger) Command {
	return &openElectionsCommand{
		electionRepository: electionRepository,
		now:                now,
		logger:             logger,
	}
}

func (c *openElectionsCommand) CanHandle(command string) bool {
	return command == openElectionsCommandName
}

func (c *openElectionsCommand) Handle(arguments string, chatID int64) []tgbotapi.Chattable {
	elections, err := c.electionRepository.GetManyOpen()
	if err != nil {
		c.logger.Errorw("failed to get open elections", "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(elections) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Aucune élection ouverte")}
	}

	now := c.now()

	var builder strings.Builder
	for _, election := range elections {
		fmt.Fprintf(&builder, "%s (%s)\n", election.Title(), election.DesignationType())
		fmt.Fprintf(&builder, "Statut : %s\n", election.Designation.Status(now))

		if election.IsVotePeriodActive(now) {
			fmt.Fprintf(&builder, "Vote en cours jusqu'au %s\n", internal.Format(election.RealVoteEndDate()))
		} else {
			fmt.Fprintf(&builder, "Fin du vote : %s\n", internal.Format(election.RealVoteEndDate()))
		}

		if election.HasSecondRound() {
			builder.WriteString("Second tour\n")
		}

		fmt.Fprintf(&builder, "/election %s\n\n", election.UUID)
	}

	return tgbot.Messages(chatID, builder.String())
}
