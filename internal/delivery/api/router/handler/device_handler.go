package handler

import (
	"log/slog"
	"net/http"

	"agrinet/internal/delivery/api/response"
	"agrinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the push targets of the caller.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice binds straight into usecase.DeviceInfo, whose tags carry the platform whitelist.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req usecase.DeviceInfo
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	deviceID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateFCMTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated successfully"})
}

// DeactivateDevice stops pushes to the device without deleting its history.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	deviceID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
