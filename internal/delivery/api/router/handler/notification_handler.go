package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agrinet/internal/delivery/api/response"
	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/entity"
	"agrinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's inbox. Every route is scoped to one recipient role.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// MarkAllReadRequest selects the inbox to clear.
type MarkAllReadRequest struct {
	Role string `json:"role" validate:"required,oneof=farmer expert"`
}

// ListNotifications never fails the page: a store error is logged and an empty inbox is returned.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	role := entity.RecipientRole(c.QueryParam("role"))
	if !role.IsValid() {
		return response.BadRequest(c, "INVALID_RECIPIENT_ROLE", "role must be farmer or expert")
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread_only"))

	ctx := c.Request().Context()
	notifications, err := h.notificationUC.List(ctx, &usecase.ListNotificationsInput{
		RecipientID:   userID,
		RecipientRole: role,
		UnreadOnly:    unreadOnly,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Notification list degraded to empty",
			slog.Any("recipient_id", userID), slog.Any("error", err))
		notifications = []*entity.Notification{}
	}

	return response.Success(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID, entity.RecipientRole(c.QueryParam("role")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	notificationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req MarkAllReadRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID, entity.RecipientRole(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	notificationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.notificationUC.Delete(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
