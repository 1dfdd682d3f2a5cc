// Package handler holds the Pub/Sub push endpoint of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"agrinet/config"
	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/constants"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) error

// PushHandler turns notification events into device pushes.
// Pub/Sub redelivers on any non-2xx answer, so only retryable failures answer 503.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	pushUC         usecase.PushDeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushDeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Local push is unauthenticated; Google push carries an OIDC token outside develop.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    validateGoogleToken,
		logger:         params.Logger,
		pushUC:         params.PushUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	event, pushMsg, err := decodeEvent(c)
	if err != nil {
		// Redelivering a payload we cannot read never succeeds, so it is acknowledged and dropped.
		h.logger.Error("Dropping undecodable push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Debug("Processing notification event",
		slog.String("notification_id", event.NotificationID),
		slog.String("type", event.Type),
	)

	report, err := h.pushUC.DeliverNotification(ctx, event)
	if err != nil {
		retry := isRetryable(err)
		reqLogger.Error("Failed to deliver notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("Notification pushed",
		slog.String("notification_id", event.NotificationID),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)

	return c.NoContent(http.StatusOK)
}

func decodeEvent(c echo.Context) (*service.NotificationEvent, *PubSubMessage, error) {
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse notification event")
	}

	return &event, &pushMsg, nil
}

// isRetryable treats client-side domain errors as permanent and everything else as transient.
func isRetryable(err error) bool {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID prefers message attributes, then the event payload, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.NotificationEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the bearer token against the URL of this endpoint.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	return h.verifyToken(req.Context(), token, audience)
}

func validateGoogleToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
