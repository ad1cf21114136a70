package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ContactKindAdherent              = "adherent"
	ContactKindElectedRepresentative = "elected_representative"
	ContactKindApplicationRequest    = "application_request"
	ContactKindDataSurvey            = "data_survey"
)

// Metrics holds the Prometheus collectors shared by the services.
type Metrics struct {
	ElectionsClosed      prometheus.Counter
	SecondRoundsStarted  prometheus.Counter
	ElectionUpdateErrors prometheus.Counter
	ContactsSynced       *prometheus.CounterVec
	ContactSyncFailures  *prometheus.CounterVec
	ContactsArchived     *prometheus.CounterVec
}

// New creates and registers the collectors on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		ElectionsClosed: factory.NewCounter(prometheus.CounterOpts{
			Name: "engagement_elections_closed_total",
			Help: "Total number of elections closed",
		}),
		SecondRoundsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "engagement_election_second_rounds_started_total",
			Help: "Total number of second rounds started",
		}),
		ElectionUpdateErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "engagement_election_update_errors_total",
			Help: "Total number of elections that failed to update",
		}),
		ContactsSynced: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_contacts_synced_total",
			Help: "Total number of contacts pushed to Mailchimp",
		}, []string{"kind"}),
		ContactSyncFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_contact_sync_failures_total",
			Help: "Total number of contacts that failed to sync to Mailchimp",
		}, []string{"kind"}),
		ContactsArchived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engagement_contacts_archived_total",
			Help: "Total number of contacts archived in Mailchimp",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncrementElectionsClosed() {
	m.ElectionsClosed.Inc()
}

func (m *Metrics) IncrementSecondRoundsStarted() {
	m.SecondRoundsStarted.Inc()
}

func (m *Metrics) IncrementElectionUpdateErrors() {
	m.ElectionUpdateErrors.Inc()
}

func (m *Metrics) IncrementContactsSynced(kind string) {
	m.ContactsSynced.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementContactSyncFailures(kind string) {
	m.ContactSyncFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementContactsArchived(kind string) {
	m.ContactsArchived.WithLabelValues(kind).Inc()
}
