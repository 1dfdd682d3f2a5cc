package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agrinet/config"
	apimiddleware "agrinet/internal/delivery/api/middleware"
	"agrinet/internal/delivery/api/router"
	"agrinet/internal/delivery/api/router/handler"
	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/service"
	"agrinet/internal/infra/metrics"
	mockService "agrinet/internal/mocks/service"
	mockUsecase "agrinet/internal/mocks/usecase"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixtures struct {
	echo          *echo.Echo
	callerID      uuid.UUID
	roles         []string
	profiles      *mockUsecase.MockProfileUsecase
	follows       *mockUsecase.MockFollowUsecase
	conversations *mockUsecase.MockConversationUsecase
	notifications *mockUsecase.MockNotificationUsecase
	reviews       *mockUsecase.MockReviewUsecase
	devices       *mockUsecase.MockDeviceUsecase
}

func newAPIFixtures(t *testing.T, roles ...string) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	f := &apiFixtures{
		callerID:      uuid.New(),
		roles:         roles,
		profiles:      mockUsecase.NewMockProfileUsecase(t),
		follows:       mockUsecase.NewMockFollowUsecase(t),
		conversations: mockUsecase.NewMockConversationUsecase(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		reviews:       mockUsecase.NewMockReviewUsecase(t),
		devices:       mockUsecase.NewMockDeviceUsecase(t),
	}

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: f.callerID, Roles: roles, Type: "access"}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("bad token")).Maybe()

	f.echo = NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profiles, Logger: logger}),
			FollowHandler:       handler.NewFollowHandler(handler.FollowHandlerParams{FollowUC: f.follows, Logger: logger}),
			ConversationHandler: handler.NewConversationHandler(handler.ConversationHandlerParams{ConversationUC: f.conversations, Logger: logger}),
			NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: f.notifications, Logger: logger}),
			SubmissionHandler:   handler.NewSubmissionHandler(handler.SubmissionHandlerParams{ReviewUC: f.reviews, Logger: logger}),
			DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.devices, Logger: logger}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(tokenSvc),
			MetricsHandler:      metrics.New().Handler(),
		},
	})

	return f
}

func (f *apiFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Warnings []struct {
		Stage       string    `json:"stage"`
		RecipientID uuid.UUID `json:"recipient_id"`
	} `json:"warnings"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_HealthAndMetricsArePublic(t *testing.T) {
	f := newAPIFixtures(t)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPI_RejectsMissingAndInvalidTokens(t *testing.T) {
	f := newAPIFixtures(t)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/experts", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/experts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
}

func TestAPI_EchoesRequestID(t *testing.T) {
	f := newAPIFixtures(t)
	f.profiles.EXPECT().ListExperts(mock.Anything).Return([]entity.ProfileSummary{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/experts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	req.Header.Set("X-Request-Id", "trace-123")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "trace-123", decode(t, rec).Meta.RequestID)
}

func TestAPI_EnsureProfileUsesTokenSubject(t *testing.T) {
	f := newAPIFixtures(t)
	f.profiles.EXPECT().
		EnsureProfile(mock.Anything, mock.MatchedBy(func(input *usecase.EnsureProfileInput) bool {
			return input.ID == f.callerID && input.UID == "firebase-uid" && input.Role == entity.RoleExpert
		})).
		Return(&entity.UserProfile{ID: f.callerID, Username: "kwame", Role: entity.RoleExpert}, true, nil)

	rec := f.do(http.MethodPost, "/api/v1/profiles/me", `{"uid":"firebase-uid","username":"kwame","role":"expert"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var profile entity.UserProfile
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &profile))
	assert.Equal(t, f.callerID, profile.ID)
}

func TestAPI_ValidationFailuresNameTheFields(t *testing.T) {
	f := newAPIFixtures(t)

	rec := f.do(http.MethodPost, "/api/v1/profiles/me", `{"uid":"firebase-uid","role":"wizard"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "required", details["username"])
	assert.Equal(t, "oneof=farmer expert user admin moderator", details["role"])
}

func TestAPI_DomainErrorsMapToTheirStatus(t *testing.T) {
	f := newAPIFixtures(t)
	f.follows.EXPECT().Follow(mock.Anything, f.callerID, f.callerID).Return(nil, domainerrors.ErrSelfFollow)

	rec := f.do(http.MethodPut, "/api/v1/follows/"+f.callerID.String(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SELF_FOLLOW", decode(t, rec).Error.Code)
}

func TestAPI_UnknownErrorsAreOpaque(t *testing.T) {
	f := newAPIFixtures(t)
	f.conversations.EXPECT().ListConversationsFor(mock.Anything, f.callerID).Return(nil, errors.New("pq: connection reset"))

	rec := f.do(http.MethodGet, "/api/v1/conversations", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestAPI_SendMessageSurfacesDeliveryWarnings(t *testing.T) {
	f := newAPIFixtures(t)
	conversationID, recipientID := uuid.New(), uuid.New()
	message := &entity.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: f.callerID, Text: "hi", Seq: 1, CreatedAt: time.Now()}

	f.conversations.EXPECT().
		SendMessage(mock.Anything, &usecase.SendMessageInput{ConversationID: conversationID, SenderID: f.callerID, Text: "hi"}).
		Return(&usecase.SendMessageResult{
			Message:  message,
			Warnings: []domainerrors.DeliveryWarning{domainerrors.NewDeliveryWarning(domainerrors.StageNotificationEmit, recipientID, errors.New("down"))},
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/conversations/"+conversationID.String()+"/messages", `{"text":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decode(t, rec)
	require.Len(t, env.Warnings, 1)
	assert.Equal(t, domainerrors.StageNotificationEmit, env.Warnings[0].Stage)
	assert.Equal(t, recipientID, env.Warnings[0].RecipientID)
}

func TestAPI_NotificationListDegradesToEmpty(t *testing.T) {
	f := newAPIFixtures(t)
	f.notifications.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("store down"))

	rec := f.do(http.MethodGet, "/api/v1/notifications?role=farmer&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))

	rec = f.do(http.MethodGet, "/api/v1/notifications?role=admin", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/notifications?role=farmer&limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_NotificationListPassesFilters(t *testing.T) {
	f := newAPIFixtures(t)
	f.notifications.EXPECT().
		List(mock.Anything, &usecase.ListNotificationsInput{
			RecipientID: f.callerID, RecipientRole: entity.RecipientExpert, UnreadOnly: true, Limit: 5, Offset: 10,
		}).
		Return([]*entity.Notification{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/notifications?role=expert&unread_only=true&limit=5&offset=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_ReviewRequiresExpertRole(t *testing.T) {
	submissionID := uuid.New()

	farmer := newAPIFixtures(t, "farmer")
	rec := farmer.do(http.MethodPost, "/api/v1/submissions/"+submissionID.String()+"/review", `{"status":"approved"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	expert := newAPIFixtures(t, "expert")
	expert.reviews.EXPECT().
		ReviewSubmission(mock.Anything, &usecase.ReviewInput{
			ExpertID: expert.callerID, SubmissionID: submissionID, Status: entity.SubmissionApproved, Feedback: "Looks like blight",
		}).
		Return(&usecase.SubmissionResult{Submission: &entity.DiagnosisSubmission{ID: submissionID, Status: entity.SubmissionApproved}}, nil)

	rec = expert.do(http.MethodPost, "/api/v1/submissions/"+submissionID.String()+"/review", `{"status":"approved","feedback":"Looks like blight"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decode(t, rec).Warnings)
}

func TestAPI_InvalidPathIDs(t *testing.T) {
	f := newAPIFixtures(t)

	rec := f.do(http.MethodGet, "/api/v1/profiles/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}

func TestAPI_FollowQRIsOwnerOnly(t *testing.T) {
	f := newAPIFixtures(t)
	f.profiles.EXPECT().FollowQR(mock.Anything, f.callerID).Return([]byte("\x89PNG"), nil)

	rec := f.do(http.MethodGet, "/api/v1/profiles/"+f.callerID.String()+"/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = f.do(http.MethodGet, "/api/v1/profiles/"+uuid.NewString()+"/qr", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_DeviceRegistrationValidatesPlatform(t *testing.T) {
	f := newAPIFixtures(t)

	rec := f.do(http.MethodPost, "/api/v1/devices", `{"fcm_token":"t","device_id":"d","platform":"symbian"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.devices.EXPECT().
		RegisterDevice(mock.Anything, f.callerID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"}).
		Return(&entity.Device{ID: uuid.New(), UserID: f.callerID, Platform: "web", IsActive: true}, nil)

	rec = f.do(http.MethodPost, "/api/v1/devices", `{"fcm_token":"t","device_id":"d","platform":"web"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_StopHonoursContext(t *testing.T) {
	f := newAPIFixtures(t)
	srv := &apiServer{cfg: &config.Config{}, logger: slog.New(slog.NewTextHandler(io.Discard, nil)), server: f.echo}

	assert.NoError(t, srv.stop(context.Background()))
}
