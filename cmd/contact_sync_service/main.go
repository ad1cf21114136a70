package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"engagement_platform/configs"
	"engagement_platform/internal/db"
	"engagement_platform/internal/db/models"
	"engagement_platform/internal/db/repositories"
	"engagement_platform/internal/di"
	"engagement_platform/internal/mailchimp"
	"engagement_platform/internal/metrics"
	"engagement_platform/internal/services"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadContactSyncServiceConfig()
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

	builder, err := mailchimp.NewRequestBuilder(
		mailchimp.NewObjectIDMapping(config.Mailchimp.InterestIDs),
		mailchimp.NewElectedRepresentativeTagsBuilder(),
		logger,
	)
	if err != nil {
		logger.Fatalw("failed to create request builder", "error", err)
	}

	contacts := &contactSync{
		adherents:              repositories.NewAdherentRepository(database),
		electedRepresentatives: repositories.NewElectedRepresentativeRepository(database),
		applicationRequests:    repositories.NewApplicationRequestRepository(database),
		dataSurveys:            repositories.NewDataSurveyRepository(database),
		zones:                  repositories.NewZoneRepository(database),
		builder:                builder,
		mailchimpService:       services.NewMailchimpService(config.Mailchimp),
		metrics:                metrics.New(prometheus.DefaultRegisterer),
		batchSize:              config.Mailchimp.BatchSize,
		logger:                 logger,
	}

	cursors := newSyncCursors(time.Now().UTC().Add(-config.Mailchimp.InitialLookback))

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err = s.Cron(config.Mailchimp.Schedule).Do(func() {
		logger.Info("synchronizing contacts")
		contacts.run(ctx, cursors)
		logger.Info("contacts synchronized")
	})
	if err != nil {
		logger.Fatalw("failed to schedule contact sync job", "error", err, "schedule", config.Mailchimp.Schedule)
	}

	s.StartAsync()
	logger.Infow("scheduler started", "schedule", config.Mailchimp.Schedule)

	<-ctx.Done()
	s.Stop()
	logger.Info("shutting down")
}

// syncCursors remembers, per contact kind, the last contact already handled.
type syncCursors map[string]repositories.SyncCursor

func newSyncCursors(start time.Time) syncCursors {
	cursor := repositories.SyncCursor{ChangedAt: start}

	return syncCursors{
		metrics.ContactKindAdherent:              cursor,
		metrics.ContactKindElectedRepresentative: cursor,
		metrics.ContactKindApplicationRequest:    cursor,
		metrics.ContactKindDataSurvey:            cursor,
	}
}

type contactSync struct {
	adherents              repositories.AdherentRepository
	electedRepresentatives repositories.ElectedRepresentativeRepository
	applicationRequests    repositories.ApplicationRequestRepository
	dataSurveys            repositories.DataSurveyRepository
	zones                  repositories.ZoneRepository
	builder                *mailchimp.RequestBuilder
	mailchimpService       services.MailchimpService
	metrics                *metrics.Metrics
	batchSize              int
	logger                 *zap.SugaredLogger
}

func (s *contactSync) run(ctx context.Context, cursors syncCursors) {
	cursors[metrics.ContactKindAdherent] = synchronize(ctx, s, contactSource[*models.Adherent]{
		kind:  metrics.ContactKindAdherent,
		fetch: s.adherents.GetManyUpdatedAfter,
		position: func(a *models.Adherent) repositories.SyncCursor {
			return repositories.SyncCursor{ChangedAt: a.UpdatedAt, ID: a.ID}
		},
		email: func(a *models.Adherent) string { return a.EmailAddress },
		payload: func(a *models.Adherent) (mailchimp.SyncPayload, error) {
			return s.builder.MemberPayload(a.EmailAddress, a), nil
		},
	}, cursors[metrics.ContactKindAdherent])

	cursors[metrics.ContactKindElectedRepresentative] = synchronize(ctx, s, contactSource[*models.ElectedRepresentative]{
		kind:  metrics.ContactKindElectedRepresentative,
		fetch: s.electedRepresentatives.GetManyUpdatedAfter,
		position: func(r *models.ElectedRepresentative) repositories.SyncCursor {
			return repositories.SyncCursor{ChangedAt: r.UpdatedAt, ID: r.ID}
		},
		email: func(r *models.ElectedRepresentative) string { return r.EmailAddress },
		payload: func(r *models.ElectedRepresentative) (mailchimp.SyncPayload, error) {
			return s.builder.ElectedRepresentativePayload(r.EmailAddress, r), nil
		},
		archived: func(r *models.ElectedRepresentative) bool { return r.IsArchived() },
	}, cursors[metrics.ContactKindElectedRepresentative])

	cursors[metrics.ContactKindApplicationRequest] = synchronize(ctx, s, contactSource[*models.ApplicationRequest]{
		kind:  metrics.ContactKindApplicationRequest,
		fetch: s.applicationRequests.GetManyUpdatedAfter,
		position: func(r *models.ApplicationRequest) repositories.SyncCursor {
			return repositories.SyncCursor{ChangedAt: r.UpdatedAt, ID: r.ID}
		},
		email: func(r *models.ApplicationRequest) string { return r.EmailAddress },
		payload: func(r *models.ApplicationRequest) (mailchimp.SyncPayload, error) {
			return s.builder.ApplicationRequestPayload(r.EmailAddress, r), nil
		},
	}, cursors[metrics.ContactKindApplicationRequest])

	cursors[metrics.ContactKindDataSurvey] = synchronize(ctx, s, contactSource[*models.DataSurvey]{
		kind:  metrics.ContactKindDataSurvey,
		fetch: s.dataSurveys.GetManyCreatedAfter,
		position: func(d *models.DataSurvey) repositories.SyncCursor {
			return repositories.SyncCursor{ChangedAt: d.CreatedAt, ID: d.ID}
		},
		email:   func(d *models.DataSurvey) string { return d.EmailAddress },
		payload: s.dataSurveyPayload,
	}, cursors[metrics.ContactKindDataSurvey])
}

func (s *contactSync) dataSurveyPayload(survey *models.DataSurvey) (mailchimp.SyncPayload, error) {
	var zones []*models.Zone

	if survey.PostalCode != "" {
		found, err := s.zones.GetManyByPostalCode(survey.PostalCode)
		if err != nil {
			return mailchimp.SyncPayload{}, fmt.Errorf("failed to get zones: %w", err)
		}
		zones = found
	}

	return s.builder.DataSurveyPayload(survey.EmailAddress, survey, zones), nil
}

type contactSource[T any] struct {
	kind     string
	fetch    func(cursor repositories.SyncCursor, limit int) ([]T, error)
	position func(T) repositories.SyncCursor
	email    func(T) string
	payload  func(T) (mailchimp.SyncPayload, error)
	// archived is nil for kinds that are never removed from the list.
	archived func(T) bool
}

// synchronize handles every contact after the cursor, batch by batch, and
// returns the new cursor. A contact rejected by Mailchimp is logged and
// skipped. On a retryable failure the cursor stays before the contact, so
// the next run starts again from it.
func synchronize[T any](ctx context.Context, s *contactSync, source contactSource[T], since repositories.SyncCursor) repositories.SyncCursor {
	cursor := since

	for ctx.Err() == nil {
		contacts, err := source.fetch(cursor, s.batchSize)
		if err != nil {
			s.logger.Errorw("failed to get contacts", "error", err, "kind", source.kind)
			return cursor
		}

		for _, contact := range contacts {
			email := source.email(contact)

			switch {
			case email == "":
				s.logger.Warnw("contact has no email address", "kind", source.kind)
			case source.archived != nil && source.archived(contact):
				if err := s.mailchimpService.ArchiveMember(ctx, email); err != nil {
					if !s.handleFailure(source.kind, email, fmt.Errorf("failed to archive member: %w", err)) {
						return cursor
					}
				} else {
					s.metrics.IncrementContactsArchived(source.kind)
				}
			default:
				if err := push(ctx, s, source, contact); err != nil {
					if !s.handleFailure(source.kind, email, err) {
						return cursor
					}
				} else {
					s.metrics.IncrementContactsSynced(source.kind)
				}
			}

			cursor = source.position(contact)
		}

		if len(contacts) < s.batchSize {
			return cursor
		}
	}

	return cursor
}

// handleFailure logs and counts a failed contact and reports whether the
// run may go on past it.
func (s *contactSync) handleFailure(kind, email string, err error) bool {
	s.metrics.IncrementContactSyncFailures(kind)

	if services.IsRetryable(err) {
		s.logger.Warnw("failed to synchronize contact, retrying next run", "error", err, "kind", kind, "email", email)
		return false
	}

	s.logger.Errorw("failed to synchronize contact", "error", err, "kind", kind, "email", email)
	return true
}

// push upserts the member then asserts its tags.
func push[T any](ctx context.Context, s *contactSync, source contactSource[T], contact T) error {
	payload, err := source.payload(contact)
	if err != nil {
		return err
	}

	if err := s.mailchimpService.UpdateMember(ctx, payload.MemberRequest()); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	if err := s.mailchimpService.UpdateMemberTags(ctx, payload.TagsRequest()); err != nil {
		return fmt.Errorf("failed to update member tags: %w", err)
	}

	return nil
}
