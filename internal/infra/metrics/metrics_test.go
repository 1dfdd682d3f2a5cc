package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.FollowChanged("follow", true)
	m.FollowChanged("follow", false)
	m.FollowChanged("follow", true)
	m.ConversationCreated()
	m.MessageSent(true)
	m.MessageSent(false)
	m.NotificationEmitted("new_message")
	m.DeliveryWarning("event_publish")
	m.PushDelivered(3, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FollowChangesTotal.WithLabelValues("follow", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FollowChangesTotal.WithLabelValues("follow", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversationsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesSentTotal.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsEmittedTotal.WithLabelValues("new_message")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveryWarningsTotal.WithLabelValues("event_publish")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PushDeliveriesTotal.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PushDeliveriesTotal.WithLabelValues("failed")))
}

func TestMetrics_InstancesDoNotCollide(t *testing.T) {
	first, second := New(), New()
	first.ConversationCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.ConversationsCreatedTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.ConversationsCreatedTotal))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.NotificationEmitted("status_update")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `agrinet_notifications_emitted_total{type="status_update"} 1`)
}
