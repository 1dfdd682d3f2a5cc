package impl

import (
	"context"
	"testing"

	"agrinet/internal/domain/entity"
	"agrinet/internal/infra/metrics"
	"agrinet/internal/infra/qrcode"
	"agrinet/internal/usecase"

	"github.com/stretchr/testify/require"
)

// testApp wires every service over one memStore, the way the fx graph wires them over Postgres.
type testApp struct {
	store     *memStore
	clock     *stepClock
	publisher *recordingPublisher
	metrics   *metrics.Metrics

	profiles      usecase.ProfileUsecase
	follows       usecase.FollowUsecase
	conversations usecase.ConversationUsecase
	notifications usecase.NotificationUsecase
	reviews       usecase.ReviewUsecase
}

func newTestApp(t *testing.T, maxPerRecipient int) *testApp {
	t.Helper()

	store := newMemStore()
	repos := store.repos()
	clock := newStepClock()
	publisher := &recordingPublisher{}
	recorder := metrics.New()
	logger := newDiscardLogger()
	cfg := newTestConfig(maxPerRecipient)
	qrService := qrcode.NewQRCodeService(cfg)

	notifications := NewNotificationService(NotificationServiceParams{
		TxManager:        store,
		NotificationRepo: repos.NotificationRepo(),
		UnreadCounter:    nopUnreadCounter{},
		Publisher:        publisher,
		Metrics:          recorder,
		Config:           cfg,
		Logger:           logger,
	})
	notifications.(*notificationService).now = clock.Now

	conversations := NewConversationService(ConversationServiceParams{
		TxManager:        store,
		ProfileRepo:      repos.ProfileRepo(),
		ConversationRepo: repos.ConversationRepo(),
		MessageRepo:      repos.MessageRepo(),
		Notifications:    notifications,
		Limiter:          allowAllLimiter{},
		Metrics:          recorder,
		Config:           cfg,
		Logger:           logger,
	})
	conversations.(*conversationService).now = clock.Now

	reviews := NewReviewService(ReviewServiceParams{
		ProfileRepo:    repos.ProfileRepo(),
		SubmissionRepo: repos.SubmissionRepo(),
		MessageRepo:    repos.MessageRepo(),
		Notifications:  notifications,
		Conversations:  conversations,
		Metrics:        recorder,
		Logger:         logger,
	})
	reviews.(*reviewService).now = clock.Now

	return &testApp{
		store:     store,
		clock:     clock,
		publisher: publisher,
		metrics:   recorder,
		profiles: NewProfileService(ProfileServiceParams{
			ProfileRepo: repos.ProfileRepo(),
			FollowRepo:  repos.FollowRepo(),
			QRService:   qrService,
			Logger:      logger,
		}),
		follows: NewFollowService(FollowServiceParams{
			TxManager: store,
			QRService: qrService,
			Metrics:   recorder,
			Logger:    logger,
		}),
		conversations: conversations,
		notifications: notifications,
		reviews:       reviews,
	}
}

func (app *testApp) newUser(t *testing.T, name string, role entity.Role) *entity.UserProfile {
	t.Helper()

	profile, created, err := app.profiles.EnsureProfile(context.Background(), &usecase.EnsureProfileInput{
		UID:         "uid-" + name,
		DisplayName: name,
		Username:    name,
		Role:        role,
	})
	require.NoError(t, err)
	require.True(t, created)

	return profile
}
