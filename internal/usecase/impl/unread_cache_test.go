package impl

import (
	"context"
	"testing"

	"agrinet/internal/domain/entity"
	"agrinet/internal/domain/repository"
	"agrinet/internal/infra/metrics"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countHookRepo runs afterCount once, right after the store answered CountUnread.
type countHookRepo struct {
	repository.NotificationRepository
	afterCount func()
}

func (r *countHookRepo) CountUnread(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error) {
	count, err := r.NotificationRepository.CountUnread(ctx, recipientID, role)
	if hook := r.afterCount; hook != nil {
		r.afterCount = nil
		hook()
	}

	return count, err
}

func TestUnreadCount_EmitDuringCountDoesNotLeaveStaleCache(t *testing.T) {
	store := newMemStore()
	counter := newMemUnreadCounter()
	repo := &countHookRepo{NotificationRepository: store.repos().NotificationRepo()}
	svc := NewNotificationService(NotificationServiceParams{
		TxManager:        store,
		NotificationRepo: repo,
		UnreadCounter:    counter,
		Publisher:        &recordingPublisher{},
		Metrics:          metrics.New(),
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})
	ctx := context.Background()
	recipient := uuid.New()

	emit := func() {
		_, err := svc.Emit(ctx, &usecase.EmitInput{
			RecipientID:   recipient,
			RecipientRole: entity.RecipientFarmer,
			Type:          entity.NotificationNewMessage,
			Title:         "New message",
		})
		require.NoError(t, err)
	}

	emit()
	repo.afterCount = emit

	count, err := svc.UnreadCount(ctx, recipient, entity.RecipientFarmer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "counted before the second emit committed")

	_, cached, err := counter.Get(ctx, recipient, "farmer")
	require.NoError(t, err)
	assert.False(t, cached, "fill from before the emit must be refused")

	count, err = svc.UnreadCount(ctx, recipient, entity.RecipientFarmer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	cachedCount, cached, err := counter.Get(ctx, recipient, "farmer")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, int64(2), cachedCount)
}

func TestUnreadCount_MarkReadInvalidatesFilledCache(t *testing.T) {
	store := newMemStore()
	counter := newMemUnreadCounter()
	svc := NewNotificationService(NotificationServiceParams{
		TxManager:        store,
		NotificationRepo: store.repos().NotificationRepo(),
		UnreadCounter:    counter,
		Publisher:        &recordingPublisher{},
		Metrics:          metrics.New(),
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})
	ctx := context.Background()
	recipient := uuid.New()

	notification, err := svc.Emit(ctx, &usecase.EmitInput{
		RecipientID:   recipient,
		RecipientRole: entity.RecipientExpert,
		Type:          entity.NotificationNewSubmission,
		Title:         "New submission",
	})
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, recipient, entity.RecipientExpert)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, svc.MarkRead(ctx, recipient, notification.ID))

	count, err = svc.UnreadCount(ctx, recipient, entity.RecipientExpert)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
