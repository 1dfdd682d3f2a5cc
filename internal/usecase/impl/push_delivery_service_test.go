package impl

import (
	"context"
	"fmt"
	"testing"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	mockRepo "agrinet/internal/mocks/repository"
	mockService "agrinet/internal/mocks/service"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushDeliveryFixtures struct {
	service          usecase.PushDeliveryUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushService      *mockService.MockPushService
	metrics          *mockService.MockMetricsRecorder
}

func createTestPushDeliveryService(t *testing.T) pushDeliveryFixtures {
	f := pushDeliveryFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		pushService:      mockService.NewMockPushService(t),
		metrics:          mockService.NewMockMetricsRecorder(t),
	}
	f.service = NewPushDeliveryService(PushDeliveryServiceParams{
		NotificationRepo: f.notificationRepo,
		DeviceRepo:       f.deviceRepo,
		PushService:      f.pushService,
		Metrics:          f.metrics,
		Logger:           newDiscardLogger(),
	})

	return f
}

func newPushEvent(notificationID, recipientID uuid.UUID) *service.NotificationEvent {
	return &service.NotificationEvent{
		NotificationID: notificationID.String(),
		RecipientID:    recipientID.String(),
		RecipientRole:  string(entity.RecipientFarmer),
		Type:           string(entity.NotificationStatusUpdate),
		Title:          "Diagnosis Approved",
		Body:           "Looks like blight",
		RelatedKind:    string(entity.RelatedSubmission),
		RelatedID:      uuid.NewString(),
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.Device {
	devices := make([]*entity.Device, 0, n)
	for i := range n {
		devices = append(devices, &entity.Device{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	return devices
}

func TestPushDelivery_SplitsIntoBatchesAndDeactivatesInvalidTokens(t *testing.T) {
	f := createTestPushDeliveryService(t)
	ctx := context.Background()
	notificationID, recipientID := uuid.New(), uuid.New()
	event := newPushEvent(notificationID, recipientID)

	f.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID}, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(devicesWithTokens(recipientID, 501), nil)

	var batchSizes []int
	f.pushService.EXPECT().
		SendBatchNotification(ctx, mock.Anything, event.Title, event.Body, mock.Anything).
		Run(func(_ context.Context, tokens []string, _, _ string, data map[string]string) {
			batchSizes = append(batchSizes, len(tokens))
			assert.Equal(t, event.NotificationID, data["notification_id"])
			assert.Equal(t, event.RelatedID, data["related_id"])
		}).
		Return(500, 0, nil, nil).Once()
	f.pushService.EXPECT().
		SendBatchNotification(ctx, mock.Anything, event.Title, event.Body, mock.Anything).
		Run(func(_ context.Context, tokens []string, _, _ string, _ map[string]string) {
			batchSizes = append(batchSizes, len(tokens))
		}).
		Return(0, 1, []string{"token-500"}, nil).Once()
	f.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-500"}).Return(1, nil)
	f.metrics.EXPECT().PushDelivered(500, 1).Return()

	report, err := f.service.DeliverNotification(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, []int{500, 1}, batchSizes)
	assert.Equal(t, &usecase.PushReport{Sent: 500, Failed: 1, Deactivated: 1}, report)
}

func TestPushDelivery_SkipsDeletedNotification(t *testing.T) {
	f := createTestPushDeliveryService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	f.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(nil, repository.ErrNotificationNotFound)

	report, err := f.service.DeliverNotification(ctx, newPushEvent(notificationID, uuid.New()))
	require.NoError(t, err)
	assert.Zero(t, report.Sent)
}

func TestPushDelivery_NoDevicesIsNotAnError(t *testing.T) {
	f := createTestPushDeliveryService(t)
	ctx := context.Background()
	notificationID, recipientID := uuid.New(), uuid.New()

	f.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID}, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(nil, nil)

	report, err := f.service.DeliverNotification(ctx, newPushEvent(notificationID, recipientID))
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushReport{}, report)
}

func TestPushDelivery_RejectsMalformedEvent(t *testing.T) {
	f := createTestPushDeliveryService(t)

	_, err := f.service.DeliverNotification(context.Background(), &service.NotificationEvent{NotificationID: "nope", RecipientID: uuid.NewString()})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPushDelivery_TransportFailureIsRetryable(t *testing.T) {
	f := createTestPushDeliveryService(t)
	ctx := context.Background()
	notificationID, recipientID := uuid.New(), uuid.New()

	f.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID}, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(devicesWithTokens(recipientID, 2), nil)
	f.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))
	f.metrics.EXPECT().PushDelivered(0, 2).Return()

	report, err := f.service.DeliverNotification(ctx, newPushEvent(notificationID, recipientID))
	assert.ErrorIs(t, err, domainerrors.ErrPushUnavailable)
	assert.Equal(t, 2, report.Failed)
}

func TestPushDelivery_OnlyInvalidTokensIsNotRetried(t *testing.T) {
	f := createTestPushDeliveryService(t)
	ctx := context.Background()
	notificationID, recipientID := uuid.New(), uuid.New()

	f.notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(&entity.Notification{ID: notificationID}, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(devicesWithTokens(recipientID, 1), nil)
	f.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-0"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"token-0"}, nil)
	f.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-0"}).Return(1, nil)
	f.metrics.EXPECT().PushDelivered(0, 1).Return()

	report, err := f.service.DeliverNotification(ctx, newPushEvent(notificationID, recipientID))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deactivated)
}
