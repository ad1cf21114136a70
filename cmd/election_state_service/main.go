package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"engagement_platform/configs"
	"engagement_platform/internal"
	"engagement_platform/internal/db"
	"engagement_platform/internal/db/models"
	"engagement_platform/internal/db/repositories"
	"engagement_platform/internal/di"
	"engagement_platform/internal/metrics"
	"engagement_platform/internal/notifications"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type electionEvent int

const (
	electionEventNone electionEvent = iota
	electionEventClosed
	electionEventSecondRoundStarted
)

var errElectionUnchanged = errors.New("election unchanged")

type updatedElection struct {
	election *models.Election
	event    electionEvent
}

func main() {
	config, err := configs.LoadElectionStateServiceConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go di.RunHealthCheckServer(ctx, config.HealthCheck, prometheus.DefaultGatherer, logger)

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	notifier, err := notifications.NewNotifier(config.Telegram, config.Discord, logger)
	if err != nil {
		logger.Fatalw("failed to create notifier", "error", err)
	}

	electionRepository := repositories.NewElectionRepository(database)
	ballotRepository := repositories.NewBallotRepository(database)
	serviceMetrics := metrics.New(prometheus.DefaultRegisterer)

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err = s.Cron(config.Election.Schedule).Do(func() {
		now := time.Now().UTC()

		logger.Info("getting open elections")
		elections, err := electionRepository.GetManyOpen()
		if err != nil {
			logger.Errorw("failed to get open elections", "error", err)
			return
		}

		electionsNeedToBeUpdated := getElectionsNeedToBeUpdated(elections, now)
		if len(electionsNeedToBeUpdated) == 0 {
			logger.Info("no elections to update")
			return
		}

		updatedElections := updateElections(ctx, electionsNeedToBeUpdated, electionRepository, ballotRepository, serviceMetrics, now, logger)

		for _, updated := range updatedElections {
			sendNotifications(updated, notifier, logger)
		}

		logger.Infow("elections updated", "count", len(updatedElections))
	})
	if err != nil {
		logger.Fatalw("failed to schedule election job", "error", err, "schedule", config.Election.Schedule)
	}

	s.StartAsync()
	logger.Infow("scheduler started", "schedule", config.Election.Schedule)

	<-ctx.Done()
	s.Stop()
	logger.Info("shutting down")
}

// getElectionsNeedToBeUpdated keeps the open elections whose vote period is over.
func getElectionsNeedToBeUpdated(elections []*models.Election, now time.Time) []*models.Election {
	var electionsNeedToBeUpdated []*models.Election

	for _, election := range elections {
		if !election.IsOpen() || election.IsVotePeriodActive(now) {
			continue
		}

		electionsNeedToBeUpdated = append(electionsNeedToBeUpdated, election)
	}

	return electionsNeedToBeUpdated
}

// updateElection records the result of the current round, then closes the
// election or opens a second round on the undecided pools.
func updateElection(election *models.Election, ballots []*models.Ballot, now time.Time) (electionEvent, error) {
	round := election.CurrentRound()
	if round == nil {
		return electionEventNone, models.ErrNoActiveRound
	}

	if election.Result == nil {
		election.Result = &models.ElectionResult{ElectionID: election.ID}
	}

	roundResult := models.ComputeRoundResult(round, ballots)
	election.Result.SetRoundResult(roundResult)

	if election.CanClose(now) {
		if err := election.Close(now); err != nil {
			return electionEventNone, err
		}
		return electionEventClosed, nil
	}

	if election.HasSecondRound() {
		return electionEventNone, nil
	}

	if err := election.StartSecondRound(undecidedPools(election, roundResult)); err != nil {
		return electionEventNone, err
	}

	return electionEventSecondRoundStarted, nil
}

func undecidedPools(election *models.Election, roundResult *models.RoundResult) []*models.ElectionPool {
	undecided := make(map[int64]bool)
	for _, id := range roundResult.UndecidedPoolIDs() {
		undecided[id] = true
	}

	var pools []*models.ElectionPool
	for _, pool := range election.Pools {
		if undecided[pool.ID] {
			pools = append(pools, pool)
		}
	}

	return pools
}

func updateElections(
	ctx context.Context,
	elections []*models.Election,
	electionRepository repositories.ElectionRepository,
	ballotRepository repositories.BallotRepository,
	serviceMetrics *metrics.Metrics,
	now time.Time,
	logger *zap.SugaredLogger,
) []updatedElection {
	var updatedElections []updatedElection

	for _, election := range elections {
		event := electionEventNone

		saved, err := electionRepository.Update(ctx, election.ID, func(locked *models.Election) error {
			if !locked.IsOpen() || locked.IsVotePeriodActive(now) {
				return errElectionUnchanged
			}

			round := locked.CurrentRound()
			if round == nil {
				return models.ErrNoActiveRound
			}

			ballots, err := ballotRepository.GetManyByRound(round.ID)
			if err != nil {
				return fmt.Errorf("failed to get ballots: %w", err)
			}

			event, err = updateElection(locked, ballots, now)
			return err
		})
		if errors.Is(err, errElectionUnchanged) {
			logger.Infow("election already up to date", "election", election.UUID)
			continue
		}
		if err != nil {
			logger.Errorw("failed to update election", "error", err, "election", election.UUID)
			serviceMetrics.IncrementElectionUpdateErrors()
			continue
		}

		switch event {
		case electionEventClosed:
			serviceMetrics.IncrementElectionsClosed()
			logger.Infow("election closed", "election", saved.UUID)
		case electionEventSecondRoundStarted:
			serviceMetrics.IncrementSecondRoundsStarted()
			logger.Infow("second round started", "election", saved.UUID, "end_date", saved.RealVoteEndDate())
		}

		updatedElections = append(updatedElections, updatedElection{election: saved, event: event})
	}

	return updatedElections
}

func sendNotifications(updated updatedElection, notifier notifications.Notifier, logger *zap.SugaredLogger) {
	var text string

	switch updated.event {
	case electionEventClosed:
		text = messageForElectionClosed(updated.election)
	case electionEventSecondRoundStarted:
		text = messageForSecondRoundStarted(updated.election)
	default:
		return
	}

	if err := notifier.Notify(text); err != nil {
		logger.Errorw("could not send notification", "error", err, "election", updated.election.UUID)
	}
}

func messageForElectionClosed(election *models.Election) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "L'élection « %s » est close.\n", election.Title())

	if election.Result != nil {
		if roundResult := election.Result.RoundResult(election.CurrentRound()); roundResult != nil {
			fmt.Fprintf(&builder, "Participants : %d, exprimés : %d, blancs : %d\n", roundResult.Participated, roundResult.Expressed, roundResult.Blank)

			for _, pool := range roundResult.PoolResults {
				fmt.Fprintf(&builder, "%s : %s\n", pool.Code, electedLabel(pool))
			}
		}
	}

	return strings.TrimSuffix(builder.String(), "\n")
}

func electedLabel(pool *models.PoolResult) string {
	for _, group := range pool.CandidateGroups {
		if group.CandidateGroupID == pool.ElectedGroupID && pool.IsElected() {
			return group.Label
		}
	}
	return "aucun élu"
}

func messageForSecondRoundStarted(election *models.Election) string {
	var codes []string
	if round := election.CurrentRound(); round != nil {
		for _, pool := range round.Pools {
			codes = append(codes, pool.Code)
		}
	}

	return fmt.Sprintf(
		"Un second tour est ouvert pour l'élection « %s » (%s) jusqu'au %s.",
		election.Title(),
		strings.Join(codes, ", "),
		internal.Format(election.RealVoteEndDate()),
	)
}
