// Package metrics exposes Prometheus instrumentation for the social and messaging flows.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"

	"agrinet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrinet"

// Metrics holds the collectors of one process. Each instance owns its registry
// so tests and multiple fx apps never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// Follow graph
	FollowChangesTotal *prometheus.CounterVec

	// Messaging
	ConversationsCreatedTotal prometheus.Counter
	MessagesSentTotal         *prometheus.CounterVec

	// Notifications
	NotificationsEmittedTotal *prometheus.CounterVec
	DeliveryWarningsTotal     *prometheus.CounterVec
	PushDeliveriesTotal       *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New registers the process, Go runtime and domain collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		FollowChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "follow_changes_total",
				Help:      "Follow and unfollow requests by whether they changed the graph",
			},
			[]string{"op", "changed"},
		),

		ConversationsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversations_created_total",
			Help:      "Conversations created",
		}),

		MessagesSentTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_sent_total",
				Help:      "Messages appended to conversations",
			},
			[]string{"submission"}, // "true" when the message discusses a submission
		),

		NotificationsEmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_emitted_total",
				Help:      "Notification records stored",
			},
			[]string{"type"},
		),

		DeliveryWarningsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delivery_warnings_total",
				Help:      "Non-fatal side effect failures after a committed operation",
			},
			[]string{"stage"},
		),

		PushDeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "push_deliveries_total",
				Help:      "Device pushes by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Registry exposes the registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exports connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "register db stats collector")
	}

	return nil
}

func (m *Metrics) FollowChanged(op string, changed bool) {
	m.FollowChangesTotal.WithLabelValues(op, strconv.FormatBool(changed)).Inc()
}

func (m *Metrics) ConversationCreated() {
	m.ConversationsCreatedTotal.Inc()
}

func (m *Metrics) MessageSent(withSubmission bool) {
	m.MessagesSentTotal.WithLabelValues(strconv.FormatBool(withSubmission)).Inc()
}

func (m *Metrics) NotificationEmitted(notificationType string) {
	m.NotificationsEmittedTotal.WithLabelValues(notificationType).Inc()
}

func (m *Metrics) DeliveryWarning(stage string) {
	m.DeliveryWarningsTotal.WithLabelValues(stage).Inc()
}

func (m *Metrics) PushDelivered(sent, failed int) {
	m.PushDeliveriesTotal.WithLabelValues("sent").Add(float64(sent))
	m.PushDeliveriesTotal.WithLabelValues("failed").Add(float64(failed))
}
