package handler

import (
	"log/slog"
	"net/http"

	"agrinet/internal/delivery/api/response"
	"agrinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FollowHandlerParams holds dependencies for FollowHandler, injected by Fx.
type FollowHandlerParams struct {
	fx.In

	FollowUC usecase.FollowUsecase
	Logger   *slog.Logger
}

// FollowHandler changes follow edges on behalf of the caller.
type FollowHandler struct {
	followUC usecase.FollowUsecase
	logger   *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler
func NewFollowHandler(params FollowHandlerParams) *FollowHandler {
	return &FollowHandler{
		followUC: params.FollowUC,
		logger:   params.Logger,
	}
}

// FollowByQRRequest carries the scanned QR payload.
type FollowByQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// Follow is idempotent: following twice answers 200 with changed=false.
func (h *FollowHandler) Follow(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	targetID, ok, err := pathID(c, "targetId")
	if !ok {
		return err
	}

	result, err := h.followUC.Follow(c.Request().Context(), userID, targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *FollowHandler) Unfollow(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	targetID, ok, err := pathID(c, "targetId")
	if !ok {
		return err
	}

	result, err := h.followUC.Unfollow(c.Request().Context(), userID, targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *FollowHandler) FollowByQR(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req FollowByQRRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.followUC.FollowByQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
