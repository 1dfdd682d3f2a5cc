package impl

import (
	"context"
	"testing"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	mockRepo "agrinet/internal/mocks/repository"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.Device{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesKnownDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.Device{ID: deviceID, UserID: userID, FCMToken: "old-token", DeviceID: "device-123", Platform: "ios"}
	updated := &entity.Device{ID: deviceID, UserID: userID, FCMToken: "new-token", DeviceID: "device-123", Platform: "ios", IsActive: true}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.Device{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(updated, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new-token", DeviceID: "device-123", Platform: "ios"})
	require.NoError(t, err)
	assert.Equal(t, updated, device)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "token", DeviceID: "device-1", Platform: "web"}

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("db down"))

		_, err := fx.service.RegisterDevice(ctx, userID, info)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find devices by user")
	})

	t.Run("duplicate token", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, userID, info)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.ErrorCode())
	})
}

func TestDeviceService_OwnershipChecks(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("update token of own device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "fresh").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "fresh"))
	})

	t.Run("deactivate someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.DeactivateDevice(ctx, userID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(ctx, userID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("deactivate own device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{{ID: uuid.New(), UserID: userID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
