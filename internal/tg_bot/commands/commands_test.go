package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"engagement_platform/configs"
	"engagement_platform/internal/db/models"
	"engagement_platform/internal/db/repositories"
	mock_repositories "engagement_platform/internal/db/repositories/mocks"
	tgbot "engagement_platform/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var voteEnd = time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)

func newTestElection() *models.Election {
	pools := []*models.ElectionPool{
		{ID: 1, Code: "president", CandidateGroups: []models.CandidateGroup{{ID: 10, Label: "Liste A"}, {ID: 11, Label: "Liste B"}}},
	}

	return &models.Election{
		ID:     42,
		UUID:   uuid.MustParse("8d3c5e1a-4f39-4b55-9a0c-6a2f1f3b2c11"),
		Status: models.ElectionStatusOpen,
		Designation: &models.Designation{
			Type:               "committee_supervisor",
			Label:              "Animateur local",
			VoteStartDate:      voteEnd.AddDate(0, 0, -7),
			VoteEndDate:        voteEnd,
			ResultDisplayDelay: 14,
		},
		Pools:  pools,
		Rounds: []*models.ElectionRound{{ID: 1, Active: true, Pools: pools}},
	}
}

func fixedNow(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func text(t *testing.T, messages []tgbotapi.Chattable) string {
	t.Helper()
	require.Len(t, messages, 1)
	message, ok := messages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return message.Text
}

func TestStartCommand_ListsCommands(t *testing.T) {
	command := NewStartCommand(configs.App{Name: "Renaissance"})

	assert.True(t, command.CanHandle("start"))
	assert.False(t, command.CanHandle("election"))

	messages := command.Handle("", 1)
	require.Len(t, messages, 1)
	message := messages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, tgbotapi.ModeMarkdownV2, message.ParseMode)
	assert.Contains(t, message.Text, "/open\\_elections")
	assert.Contains(t, message.Text, "*Menu*")
}

func TestOpenElectionsCommand_NoElections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetManyOpen().Return([]*models.Election{}, nil)

	command := NewOpenElectionsCommand(electionRepo, fixedNow(voteEnd), zap.NewNop().Sugar())

	assert.Equal(t, "Aucune élection ouverte", text(t, command.Handle("", 1)))
}

func TestOpenElectionsCommand_ListsElections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetManyOpen().Return([]*models.Election{newTestElection()}, nil)

	command := NewOpenElectionsCommand(electionRepo, fixedNow(voteEnd.Add(-time.Hour)), zap.NewNop().Sugar())

	assert.Equal(t,
		"Animateur local (committee_supervisor)\n"+
			"Statut : in_progress\n"+
			"Vote en cours jusqu'au 10.03.2024\n"+
			"/election 8d3c5e1a-4f39-4b55-9a0c-6a2f1f3b2c11",
		text(t, command.Handle("", 1)))
}

func TestOpenElectionsCommand_LongListIsSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var elections []*models.Election
	for i := 0; i < 100; i++ {
		election := newTestElection()
		election.UUID = uuid.New()
		elections = append(elections, election)
	}

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetManyOpen().Return(elections, nil)

	command := NewOpenElectionsCommand(electionRepo, fixedNow(voteEnd.Add(-time.Hour)), zap.NewNop().Sugar())

	messages := command.Handle("", 1)

	require.Greater(t, len(messages), 1)
	var all strings.Builder
	for _, chattable := range messages {
		message, ok := chattable.(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.LessOrEqual(t, len([]rune(message.Text)), tgbot.MaxMessageLength)
		all.WriteString(message.Text + "\n")
	}
	for _, election := range elections {
		assert.Contains(t, all.String(), "/election "+election.UUID.String())
	}
}

func TestOpenElectionsCommand_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetManyOpen().Return(nil, errors.New("database error"))

	command := NewOpenElectionsCommand(electionRepo, fixedNow(voteEnd), zap.NewNop().Sugar())

	assert.Equal(t, "Une erreur est survenue, veuillez réessayer", text(t, command.Handle("", 1)))
}

func TestElectionCommand_InvalidUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	command := NewElectionCommand(mock_repositories.NewMockElectionRepository(ctrl), fixedNow(voteEnd), zap.NewNop().Sugar())

	assert.Equal(t, "Utilisation : /election <uuid>", text(t, command.Handle("not-a-uuid", 1)))
}

func TestElectionCommand_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	election := newTestElection()
	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetOneByUUID(election.UUID).Return(nil, repositories.ErrNotFound)

	command := NewElectionCommand(electionRepo, fixedNow(voteEnd), zap.NewNop().Sugar())

	assert.Equal(t, "Élection introuvable", text(t, command.Handle(" "+election.UUID.String()+" ", 1)))
}

func TestElectionCommand_HidesResultsDuringVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	election := newTestElection()
	election.Result = &models.ElectionResult{RoundResults: []*models.RoundResult{{RoundID: 1}}}

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetOneByUUID(election.UUID).Return(election, nil)

	command := NewElectionCommand(electionRepo, fixedNow(voteEnd), zap.NewNop().Sugar())

	result := text(t, command.Handle(election.UUID.String(), 1))
	assert.Contains(t, result, "Résultats disponibles après le vote")
	assert.NotContains(t, result, "Tour 1")
}

func TestElectionCommand_ShowsResultsOfClosedElection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	election := newTestElection()
	ballots := []*models.Ballot{
		{ElectionRoundID: 1, Choices: []models.BallotChoice{{PoolID: 1, CandidateGroupID: 10}}},
		{ElectionRoundID: 1, Choices: []models.BallotChoice{{PoolID: 1, CandidateGroupID: 0}}},
	}
	election.Result = &models.ElectionResult{}
	election.Result.SetRoundResult(models.ComputeRoundResult(election.Rounds[0], ballots))
	require.NoError(t, election.Close(voteEnd.Add(time.Hour)))

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	electionRepo.EXPECT().GetOneByUUID(election.UUID).Return(election, nil)

	command := NewElectionCommand(electionRepo, fixedNow(voteEnd.AddDate(0, 0, 1)), zap.NewNop().Sugar())

	assert.Equal(t,
		"Animateur local (committee_supervisor)\n"+
			"Statut : closed\n"+
			"Vote : du 03.03.2024 au 10.03.2024\n"+
			"Close le 10.03.2024 19:00 UTC\n"+
			"Résultats publiés jusqu'au 24.03.2024\n"+
			"\n"+
			"Tour 1 : 2 votants, 1 exprimés, 1 blancs\n"+
			"president : Liste A 1 (élu); Liste B 0;",
		text(t, command.Handle(election.UUID.String(), 1)))
}
