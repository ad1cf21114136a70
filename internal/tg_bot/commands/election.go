package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"engagement_platform/internal"
	"engagement_platform/internal/db/models"
	"engagement_platform/internal/db/repositories"
	tgbot "engagement_platform/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const electionCommandName = "election"

type electionCommand struct {
	electionRepository repositories.ElectionRepository
	now                func() time.Time
	logger             *zap.SugaredLogger
}

func NewElectionCommand(electionRepository repositories.ElectionRepository, now func() time.Time, logger *zap.SugaredLogger) Command {
	return &electionCommand{
		electionRepository: electionRepository,
		now:                now,
		logger:             logger,
	}
}

func (c *electionCommand) CanHandle(command string) bool {
	return command == electionCommandName
}

func (c *electionCommand) Handle(arguments string, chatID int64) []tgbotapi.Chattable {
	electionUUID, err := uuid.Parse(strings.TrimSpace(arguments))
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Utilisation : /election <uuid>")}
	}

	election, err := c.electionRepository.GetOneByUUID(electionUUID)
	if errors.Is(err, repositories.ErrNotFound) {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Élection introuvable")}
	}
	if err != nil {
		c.logger.Errorw("failed to get election", "error", err, "election", electionUUID)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	return tgbot.Messages(chatID, describeElection(election, c.now()))
}

func describeElection(election *models.Election, now time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "%s (%s)\n", election.Title(), election.DesignationType())
	fmt.Fprintf(&builder, "Statut : %s\n", election.Status)
	fmt.Fprintf(&builder, "Vote : du %s au %s\n", internal.Format(election.Designation.VoteStartDate), internal.Format(election.Designation.VoteEndDate))

	if election.HasSecondRound() {
		fmt.Fprintf(&builder, "Second tour jusqu'au %s\n", internal.Format(*election.SecondRoundEndDate))
	}

	if election.ClosedAt != nil {
		fmt.Fprintf(&builder, "Close le %s\n", internal.FormatDateTime(*election.ClosedAt))
	}

	if !election.HasResult() {
		return strings.TrimSpace(builder.String())
	}

	if election.IsVotePeriodActive(now) {
		builder.WriteString("Résultats disponibles après le vote\n")
		return strings.TrimSpace(builder.String())
	}

	if election.Designation.IsResultPeriodActive(now) {
		publishedUntil := election.Designation.VoteEndDate.AddDate(0, 0, election.Designation.ResultDisplayDelay)
		fmt.Fprintf(&builder, "Résultats publiés jusqu'au %s\n", internal.Format(publishedUntil))
	}

	for i, round := range election.Rounds {
		roundResult := election.Result.RoundResult(round)
		if roundResult == nil {
			continue
		}

		fmt.Fprintf(&builder, "\nTour %d : %d votants, %d exprimés, %d blancs\n", i+1, roundResult.Participated, roundResult.Expressed, roundResult.Blank)

		for _, pool := range roundResult.PoolResults {
			fmt.Fprintf(&builder, "%s :", pool.Code)
			for _, group := range pool.CandidateGroups {
				marker := ""
				if pool.IsElected() && group.CandidateGroupID == pool.ElectedGroupID {
					marker = " (élu)"
				}
				fmt.Fprintf(&builder, " %s %d%s;", group.Label, group.Votes, marker)
			}
			builder.WriteString("\n")
		}
	}

	return strings.TrimSpace(builder.String())
}
