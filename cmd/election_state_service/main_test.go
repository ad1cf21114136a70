package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"engagement_platform/internal/db/models"
	mock_repositories "engagement_platform/internal/db/repositories/mocks"
	"engagement_platform/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var voteEnd = time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)

func newTestElection() *models.Election {
	pools := []*models.ElectionPool{
		{ID: 1, ElectionID: 42, Code: "president", CandidateGroups: []models.CandidateGroup{{ID: 10, Label: "Liste A"}, {ID: 11, Label: "Liste B"}}},
		{ID: 2, ElectionID: 42, Code: "tresorier", CandidateGroups: []models.CandidateGroup{{ID: 20, Label: "Liste C"}, {ID: 21, Label: "Liste D"}}},
	}

	return &models.Election{
		ID:     42,
		UUID:   uuid.New(),
		Status: models.ElectionStatusOpen,
		Designation: &models.Designation{
			Label:                   "Bureau du comité",
			VoteStartDate:           voteEnd.AddDate(0, 0, -7),
			VoteEndDate:             voteEnd,
			AdditionalRoundDuration: 5,
		},
		Pools:  pools,
		Rounds: []*models.ElectionRound{{ID: 1, ElectionID: 42, Active: true, Pools: pools}},
	}
}

func ballot(roundID int64, choices ...models.BallotChoice) *models.Ballot {
	return &models.Ballot{ElectionRoundID: roundID, Choices: choices}
}

func vote(poolID, groupID int64) models.BallotChoice {
	return models.BallotChoice{PoolID: poolID, CandidateGroupID: groupID}
}

type fakeNotifier struct {
	texts []string
	err   error
}

func (n *fakeNotifier) Notify(text string) error {
	n.texts = append(n.texts, text)
	return n.err
}

func TestGetElectionsNeedToBeUpdated_VotePeriodOver(t *testing.T) {
	election := newTestElection()

	result := getElectionsNeedToBeUpdated([]*models.Election{election}, voteEnd.Add(time.Minute))
	assert.Equal(t, 1, len(result))
}

func TestGetElectionsNeedToBeUpdated_VotePeriodActive(t *testing.T) {
	election := newTestElection()

	result := getElectionsNeedToBeUpdated([]*models.Election{election}, voteEnd)
	assert.Equal(t, 0, len(result))
}

func TestGetElectionsNeedToBeUpdated_SecondRoundActive(t *testing.T) {
	election := newTestElection()
	require.NoError(t, election.StartSecondRound(election.Pools))

	result := getElectionsNeedToBeUpdated([]*models.Election{election}, voteEnd.AddDate(0, 0, 2))
	assert.Equal(t, 0, len(result))
}

func TestGetElectionsNeedToBeUpdated_SkipsClosed(t *testing.T) {
	election := newTestElection()
	require.NoError(t, election.Close(voteEnd))

	result := getElectionsNeedToBeUpdated([]*models.Election{election}, voteEnd.AddDate(0, 1, 0))
	assert.Equal(t, 0, len(result))
}

func TestUpdateElection_AllPoolsElectedCloses(t *testing.T) {
	election := newTestElection()
	now := voteEnd.Add(time.Hour)
	ballots := []*models.Ballot{
		ballot(1, vote(1, 10), vote(2, 20)),
		ballot(1, vote(1, 10), vote(2, 21)),
		ballot(1, vote(1, 11), vote(2, 20)),
	}

	event, err := updateElection(election, ballots, now)

	require.NoError(t, err)
	assert.Equal(t, electionEventClosed, event)
	assert.True(t, election.IsClosed())
	assert.Equal(t, now, *election.ClosedAt)
	require.NotNil(t, election.Result)
	require.Len(t, election.Result.RoundResults, 1)
	assert.Equal(t, 3, election.Result.RoundResults[0].Participated)
}

func TestUpdateElection_TieStartsSecondRoundOnUndecidedPools(t *testing.T) {
	election := newTestElection()
	ballots := []*models.Ballot{
		ballot(1, vote(1, 10), vote(2, 20)),
		ballot(1, vote(1, 10), vote(2, 21)),
	}

	event, err := updateElection(election, ballots, voteEnd.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, electionEventSecondRoundStarted, event)
	assert.True(t, election.IsOpen())
	require.Len(t, election.Rounds, 2)
	assert.False(t, election.Rounds[0].Active)
	assert.True(t, election.Rounds[1].Active)
	require.Len(t, election.Rounds[1].Pools, 1)
	assert.Equal(t, int64(2), election.Rounds[1].Pools[0].ID)
	assert.Equal(t, voteEnd.AddDate(0, 0, 5), *election.SecondRoundEndDate)
}

func TestUpdateElection_NoBallotsStartsSecondRoundOnEveryPool(t *testing.T) {
	election := newTestElection()

	event, err := updateElection(election, nil, voteEnd.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, electionEventSecondRoundStarted, event)
	assert.Len(t, election.CurrentRound().Pools, 2)
}

func TestUpdateElection_SecondRoundOverCloses(t *testing.T) {
	election := newTestElection()
	require.NoError(t, election.StartSecondRound(election.Pools[1:]))
	election.Rounds[1].ID = 2
	now := election.SecondRoundEndDate.Add(time.Minute)

	event, err := updateElection(election, []*models.Ballot{ballot(2, vote(2, 21))}, now)

	require.NoError(t, err)
	assert.Equal(t, electionEventClosed, event)
	assert.True(t, election.IsClosed())
	require.NotNil(t, election.Result.RoundResult(election.Rounds[1]))
	assert.Equal(t, int64(21), election.Result.RoundResult(election.Rounds[1]).PoolResults[0].ElectedGroupID)
}

func TestUpdateElection_NoActiveRound(t *testing.T) {
	election := newTestElection()
	election.Rounds[0].Active = false

	event, err := updateElection(election, nil, voteEnd.Add(time.Hour))

	assert.ErrorIs(t, err, models.ErrNoActiveRound)
	assert.Equal(t, electionEventNone, event)
	assert.Nil(t, election.Result)
}

func TestUpdateElections_AllElectionsUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)
	serviceMetrics := metrics.New(prometheus.NewRegistry())
	logger := zap.NewNop().Sugar()
	now := voteEnd.Add(time.Hour)

	election := newTestElection()
	ballots := []*models.Ballot{ballot(1, vote(1, 10), vote(2, 20))}

	electionRepo.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
		func(ctx context.Context, electionID int64, fn func(*models.Election) error) (*models.Election, error) {
			if err := fn(election); err != nil {
				return nil, err
			}
			return election, nil
		})
	ballotRepo.EXPECT().GetManyByRound(int64(1)).Return(ballots, nil)

	result := updateElections(context.Background(), []*models.Election{election}, electionRepo, ballotRepo, serviceMetrics, now, logger)

	require.Equal(t, 1, len(result))
	assert.Equal(t, electionEventClosed, result[0].event)
	assert.Equal(t, float64(1), testutil.ToFloat64(serviceMetrics.ElectionsClosed))
}

func TestUpdateElections_SomeElectionsNotUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)
	serviceMetrics := metrics.New(prometheus.NewRegistry())
	logger := zap.NewNop().Sugar()
	now := voteEnd.Add(time.Hour)

	failing := newTestElection()
	failing.ID = 1
	working := newTestElection()

	electionRepo.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("database error"))
	electionRepo.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
		func(ctx context.Context, electionID int64, fn func(*models.Election) error) (*models.Election, error) {
			if err := fn(working); err != nil {
				return nil, err
			}
			return working, nil
		})
	ballotRepo.EXPECT().GetManyByRound(int64(1)).Return(nil, nil)

	result := updateElections(context.Background(), []*models.Election{failing, working}, electionRepo, ballotRepo, serviceMetrics, now, logger)

	require.Equal(t, 1, len(result))
	assert.Equal(t, electionEventSecondRoundStarted, result[0].event)
	assert.Equal(t, float64(1), testutil.ToFloat64(serviceMetrics.ElectionUpdateErrors))
	assert.Equal(t, float64(1), testutil.ToFloat64(serviceMetrics.SecondRoundsStarted))
}

func TestUpdateElections_BallotsErrorRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)
	serviceMetrics := metrics.New(prometheus.NewRegistry())
	logger := zap.NewNop().Sugar()

	election := newTestElection()

	electionRepo.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
		func(ctx context.Context, electionID int64, fn func(*models.Election) error) (*models.Election, error) {
			return nil, fn(election)
		})
	ballotRepo.EXPECT().GetManyByRound(int64(1)).Return(nil, errors.New("database error"))

	result := updateElections(context.Background(), []*models.Election{election}, electionRepo, ballotRepo, serviceMetrics, voteEnd.Add(time.Hour), logger)

	assert.Equal(t, 0, len(result))
	assert.True(t, election.IsOpen())
	assert.Nil(t, election.Result)
}

func TestUpdateElections_LockedElectionAlreadyClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mock_repositories.NewMockElectionRepository(ctrl)
	ballotRepo := mock_repositories.NewMockBallotRepository(ctrl)
	serviceMetrics := metrics.New(prometheus.NewRegistry())
	logger := zap.NewNop().Sugar()

	stale := newTestElection()
	locked := newTestElection()
	require.NoError(t, locked.Close(voteEnd))

	electionRepo.EXPECT().Update(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
		func(ctx context.Context, electionID int64, fn func(*models.Election) error) (*models.Election, error) {
			return nil, fn(locked)
		})

	result := updateElections(context.Background(), []*models.Election{stale}, electionRepo, ballotRepo, serviceMetrics, voteEnd.Add(time.Hour), logger)

	assert.Equal(t, 0, len(result))
	assert.Equal(t, float64(0), testutil.ToFloat64(serviceMetrics.ElectionUpdateErrors))
}

func TestSendNotifications_Closed(t *testing.T) {
	election := newTestElection()
	_, err := updateElection(election, []*models.Ballot{ballot(1, vote(1, 10), vote(2, 21))}, voteEnd.Add(time.Hour))
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	sendNotifications(updatedElection{election: election, event: electionEventClosed}, notifier, zap.NewNop().Sugar())

	require.Len(t, notifier.texts, 1)
	assert.Equal(t, "L'élection « Bureau du comité » est close.\nParticipants : 1, exprimés : 1, blancs : 0\npresident : Liste A\ntresorier : Liste D", notifier.texts[0])
}

func TestSendNotifications_SecondRound(t *testing.T) {
	election := newTestElection()
	require.NoError(t, election.StartSecondRound(election.Pools[:1]))

	notifier := &fakeNotifier{}
	sendNotifications(updatedElection{election: election, event: electionEventSecondRoundStarted}, notifier, zap.NewNop().Sugar())

	require.Len(t, notifier.texts, 1)
	assert.Equal(t, "Un second tour est ouvert pour l'élection « Bureau du comité » (president) jusqu'au 15.03.2024.", notifier.texts[0])
}

func TestSendNotifications_NoEventSendsNothing(t *testing.T) {
	notifier := &fakeNotifier{}
	sendNotifications(updatedElection{election: newTestElection(), event: electionEventNone}, notifier, zap.NewNop().Sugar())

	assert.Empty(t, notifier.texts)
}

func TestSendNotifications_ErrorIsLogged(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("network down")}

	assert.NotPanics(t, func() {
		sendNotifications(updatedElection{election: newTestElection(), event: electionEventClosed}, notifier, zap.NewNop().Sugar())
	})
	assert.Len(t, notifier.texts, 1)
}
