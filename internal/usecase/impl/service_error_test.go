package impl

import (
	"context"
	"testing"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	mockRepo "agrinet/internal/mocks/repository"
	mockService "agrinet/internal/mocks/service"
	mockUsecase "agrinet/internal/mocks/usecase"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

// --- follow ---

func TestFollowService_TransactionFailureIsReturned(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	srv := NewFollowService(FollowServiceParams{
		TxManager: txManager,
		QRService: mockService.NewMockQRCodeService(t),
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrTransactionFailed)

	_, err := srv.Follow(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestFollowService_MissingProfileAbortsBeforeWriting(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	srv := NewFollowService(FollowServiceParams{
		TxManager: txManager,
		QRService: mockService.NewMockQRCodeService(t),
		Metrics:   mockService.NewMockMetricsRecorder(t),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	actorID, targetID := uuid.New(), uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().ProfileRepo().Return(profileRepo)
	factory.EXPECT().FollowRepo().Return(followRepo)
	profileRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{actorID, targetID}).Return(repository.ErrProfileNotFound)

	_, err := srv.Follow(ctx, actorID, targetID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestFollowService_UnchangedEdgeSkipsCounters(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	srv := NewFollowService(FollowServiceParams{
		TxManager: txManager,
		QRService: mockService.NewMockQRCodeService(t),
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	actorID, targetID := uuid.New(), uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) {
			_ = fn(factory)
		}).
		Return(nil)
	factory.EXPECT().ProfileRepo().Return(profileRepo)
	factory.EXPECT().FollowRepo().Return(followRepo)
	profileRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{actorID, targetID}).Return(nil)
	followRepo.EXPECT().Delete(ctx, actorID, targetID).Return(false, nil)
	metrics.EXPECT().FollowChanged(opUnfollow, false).Return()

	result, err := srv.Unfollow(ctx, actorID, targetID)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, result.Following)
}

func TestFollowService_FollowByQRRejectsForeignCodes(t *testing.T) {
	qrService := mockService.NewMockQRCodeService(t)
	srv := NewFollowService(FollowServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		QRService: qrService,
		Metrics:   mockService.NewMockMetricsRecorder(t),
		Logger:    newDiscardLogger(),
	})

	qrService.EXPECT().ParseFollowQR("https://example.com").Return(uuid.Nil, errors.New("unsupported scheme"))

	_, err := srv.FollowByQR(context.Background(), uuid.New(), "https://example.com")
	assertErrorCode(t, err, "INVALID_QR_CODE")
}

// --- profile ---

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	followRepo  *mockRepo.MockFollowRepository
	qrService   *mockService.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		followRepo:  mockRepo.NewMockFollowRepository(t),
		qrService:   mockService.NewMockQRCodeService(t),
	}
	f.service = NewProfileService(ProfileServiceParams{
		ProfileRepo: f.profileRepo,
		FollowRepo:  f.followRepo,
		QRService:   f.qrService,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestProfileService_EnsureProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("existing profile is returned untouched", func(t *testing.T) {
		f := createTestProfileService(t)
		existing := &entity.UserProfile{ID: uuid.New(), UID: "uid-1", Username: "kofi", Role: entity.RoleExpert}
		f.profileRepo.EXPECT().FindByUID(ctx, "uid-1").Return(existing, nil)

		profile, created, err := f.service.EnsureProfile(ctx, &usecase.EnsureProfileInput{UID: "uid-1", Username: "someone-else"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, profile)
	})

	t.Run("defaults to farmer and drops specialization", func(t *testing.T) {
		f := createTestProfileService(t)
		f.profileRepo.EXPECT().FindByUID(ctx, "uid-2").Return(nil, repository.ErrProfileNotFound)
		f.profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

		profile, created, err := f.service.EnsureProfile(ctx, &usecase.EnsureProfileInput{UID: "uid-2", Username: "abena", Specialization: "soil"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entity.RoleFarmer, profile.Role)
		assert.Empty(t, profile.Specialization)
	})

	t.Run("concurrent first sign-in returns the winner", func(t *testing.T) {
		f := createTestProfileService(t)
		winner := &entity.UserProfile{ID: uuid.New(), UID: "uid-3", Username: "yaw"}
		f.profileRepo.EXPECT().FindByUID(ctx, "uid-3").Return(nil, repository.ErrProfileNotFound).Once()
		f.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateProfile)
		f.profileRepo.EXPECT().FindByUID(ctx, "uid-3").Return(winner, nil).Once()

		profile, created, err := f.service.EnsureProfile(ctx, &usecase.EnsureProfileInput{UID: "uid-3", Username: "yaw"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winner, profile)
	})

	t.Run("taken username", func(t *testing.T) {
		f := createTestProfileService(t)
		f.profileRepo.EXPECT().FindByUID(ctx, "uid-4").Return(nil, repository.ErrProfileNotFound)
		f.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateProfile)

		_, _, err := f.service.EnsureProfile(ctx, &usecase.EnsureProfileInput{UID: "uid-4", Username: "yaw"})
		assertErrorCode(t, err, "CONFLICT")
	})

	t.Run("validation", func(t *testing.T) {
		f := createTestProfileService(t)

		_, _, err := f.service.EnsureProfile(ctx, &usecase.EnsureProfileInput{UID: "uid-5", Username: "  "})
		assertErrorCode(t, err, "VALIDATION_FAILED")

		_, _, err = f.service.EnsureProfile(ctx, &usecase.EnsureProfileInput{UID: "uid-5", Username: "esi", Role: "wizard"})
		assertErrorCode(t, err, "VALIDATION_FAILED")
	})
}

func TestProfileService_GetProfileMapsNotFound(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	f.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	_, err := f.service.GetProfile(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

// --- notification ---

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	unreadCounter    *mockService.MockUnreadCounter
	publisher        *mockService.MockEventPublisher
	metrics          *mockService.MockMetricsRecorder
}

func createTestNotificationService(t *testing.T, txManager repository.TransactionManager) notificationServiceFixtures {
	f := notificationServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		unreadCounter:    mockService.NewMockUnreadCounter(t),
		publisher:        mockService.NewMockEventPublisher(t),
		metrics:          mockService.NewMockMetricsRecorder(t),
	}
	if txManager == nil {
		txManager = mockRepo.NewMockTransactionManager(t)
	}
	f.service = NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: f.notificationRepo,
		UnreadCounter:    f.unreadCounter,
		Publisher:        f.publisher,
		Metrics:          f.metrics,
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestNotificationService_UnreadCountReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	recipientID := uuid.New()

	t.Run("hit", func(t *testing.T) {
		f := createTestNotificationService(t, nil)
		f.unreadCounter.EXPECT().Get(ctx, recipientID, "farmer").Return(4, true, nil)

		count, err := f.service.UnreadCount(ctx, recipientID, entity.RecipientFarmer)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("miss fills the cache", func(t *testing.T) {
		f := createTestNotificationService(t, nil)
		f.unreadCounter.EXPECT().Get(ctx, recipientID, "expert").Return(0, false, nil)
		f.unreadCounter.EXPECT().Generation(ctx, recipientID, "expert").Return("g1", nil)
		f.notificationRepo.EXPECT().CountUnread(ctx, recipientID, entity.RecipientExpert).Return(7, nil)
		f.unreadCounter.EXPECT().Set(ctx, recipientID, "expert", int64(7), "g1").Return(true, nil)

		count, err := f.service.UnreadCount(ctx, recipientID, entity.RecipientExpert)
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("cache outage falls back to the store", func(t *testing.T) {
		f := createTestNotificationService(t, nil)
		f.unreadCounter.EXPECT().Get(ctx, recipientID, "farmer").Return(0, false, errors.New("redis down"))
		f.unreadCounter.EXPECT().Generation(ctx, recipientID, "farmer").Return("", errors.New("redis down"))
		f.notificationRepo.EXPECT().CountUnread(ctx, recipientID, entity.RecipientFarmer).Return(2, nil)

		count, err := f.service.UnreadCount(ctx, recipientID, entity.RecipientFarmer)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		f.unreadCounter.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stale generation still returns the count", func(t *testing.T) {
		f := createTestNotificationService(t, nil)
		f.unreadCounter.EXPECT().Get(ctx, recipientID, "farmer").Return(0, false, nil)
		f.unreadCounter.EXPECT().Generation(ctx, recipientID, "farmer").Return("g1", nil)
		f.notificationRepo.EXPECT().CountUnread(ctx, recipientID, entity.RecipientFarmer).Return(3, nil)
		f.unreadCounter.EXPECT().Set(ctx, recipientID, "farmer", int64(3), "g1").Return(false, nil)

		count, err := f.service.UnreadCount(ctx, recipientID, entity.RecipientFarmer)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestNotificationService_PublishFailureKeepsTheRecord(t *testing.T) {
	store := newMemStore()
	f := createTestNotificationService(t, store)
	ctx := context.Background()
	recipientID := uuid.New()

	f.unreadCounter.EXPECT().Invalidate(ctx, recipientID, "farmer").Return(nil)
	f.publisher.EXPECT().PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).Return(errors.New("pubsub unavailable"))
	f.metrics.EXPECT().DeliveryWarning(domainerrors.StageEventPublish).Return()
	f.metrics.EXPECT().NotificationEmitted("new_message").Return()

	notification, err := f.service.Emit(ctx, &usecase.EmitInput{
		RecipientID:   recipientID,
		RecipientRole: entity.RecipientFarmer,
		Type:          entity.NotificationNewMessage,
		Title:         "New message from Ama",
	})
	require.NoError(t, err)

	stored, err := store.repos().NotificationRepo().FindByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, notification.Title, stored.Title)
}

// --- conversation ---

func TestConversationService_RateLimitedBeforeWriting(t *testing.T) {
	limiter := mockService.NewMockSendLimiter(t)
	senderID := uuid.New()
	srv := NewConversationService(ConversationServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		Notifications: mockUsecase.NewMockNotificationUsecase(t),
		Limiter:       limiter,
		Metrics:       mockService.NewMockMetricsRecorder(t),
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	})

	limiter.EXPECT().Allow(senderID).Return(false)

	_, err := srv.SendMessage(context.Background(), &usecase.SendMessageInput{ConversationID: uuid.New(), SenderID: senderID, Text: "hello"})
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
}

func TestConversationService_NotificationFailureBecomesWarning(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	alice := app.newUser(t, "alice", entity.RoleFarmer)
	bob := app.newUser(t, "bob", entity.RoleExpert)

	notifications := mockUsecase.NewMockNotificationUsecase(t)
	repos := app.store.repos()
	srv := NewConversationService(ConversationServiceParams{
		TxManager:        app.store,
		ProfileRepo:      repos.ProfileRepo(),
		ConversationRepo: repos.ConversationRepo(),
		MessageRepo:      repos.MessageRepo(),
		Notifications:    notifications,
		Limiter:          allowAllLimiter{},
		Metrics:          app.metrics,
		Config:           newTestConfig(0),
		Logger:           newDiscardLogger(),
	})

	conversation, err := srv.GetOrCreateConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	notifications.EXPECT().
		Emit(ctx, mock.MatchedBy(func(input *usecase.EmitInput) bool {
			return input.RecipientID == bob.ID && input.RecipientRole == entity.RecipientExpert
		})).
		Return(nil, domainerrors.ErrTransactionFailed)

	result, err := srv.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: alice.ID, Text: "are you there?"})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domainerrors.StageNotificationEmit, result.Warnings[0].Stage)
	assert.Equal(t, bob.ID, result.Warnings[0].RecipientID)

	messages, err := srv.ListMessages(ctx, conversation.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

// --- review ---

func TestReviewService_SubmitForReviewReportsLookupFailure(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	srv := NewReviewService(ReviewServiceParams{
		ProfileRepo:    profileRepo,
		SubmissionRepo: submissionRepo,
		MessageRepo:    mockRepo.NewMockMessageRepository(t),
		Notifications:  mockUsecase.NewMockNotificationUsecase(t),
		Conversations:  mockUsecase.NewMockConversationUsecase(t),
		Metrics:        metrics,
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()
	farmer := &entity.UserProfile{ID: uuid.New(), Username: "ama", Role: entity.RoleFarmer}

	profileRepo.EXPECT().FindByID(ctx, farmer.ID).Return(farmer, nil)
	submissionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DiagnosisSubmission")).Return(nil)
	profileRepo.EXPECT().FindByRole(ctx, entity.RoleExpert).Return(nil, errors.New("db down"))
	metrics.EXPECT().DeliveryWarning(domainerrors.StageRecipientLookup).Return()

	result, err := srv.SubmitForReview(ctx, &usecase.SubmitForReviewInput{FarmerID: farmer.ID, Diagnosis: sampleDiagnosis})
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionPending, result.Submission.Status)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domainerrors.StageRecipientLookup, result.Warnings[0].Stage)
}

func TestReviewService_ReviewRejectsNonTerminalStatus(t *testing.T) {
	srv := NewReviewService(ReviewServiceParams{
		ProfileRepo:    mockRepo.NewMockProfileRepository(t),
		SubmissionRepo: mockRepo.NewMockSubmissionRepository(t),
		MessageRepo:    mockRepo.NewMockMessageRepository(t),
		Notifications:  mockUsecase.NewMockNotificationUsecase(t),
		Conversations:  mockUsecase.NewMockConversationUsecase(t),
		Metrics:        mockService.NewMockMetricsRecorder(t),
		Logger:         newDiscardLogger(),
	})

	_, err := srv.ReviewSubmission(context.Background(), &usecase.ReviewInput{
		ExpertID: uuid.New(), SubmissionID: uuid.New(), Status: entity.SubmissionPending,
	})
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestReviewService_EmitFailureKeepsTheDecision(t *testing.T) {
	for _, status := range []entity.SubmissionStatus{entity.SubmissionApproved, entity.SubmissionRejected} {
		t.Run(string(status), func(t *testing.T) {
			app := newTestApp(t, 500)
			ctx := context.Background()
			farmer := app.newUser(t, "Ines", entity.RoleFarmer)
			expert := app.newUser(t, "Dr Jide", entity.RoleExpert)
			submission := submitSample(t, app, farmer)

			repos := app.store.repos()
			notifications := mockUsecase.NewMockNotificationUsecase(t)
			metrics := mockService.NewMockMetricsRecorder(t)
			srv := NewReviewService(ReviewServiceParams{
				ProfileRepo:    repos.ProfileRepo(),
				SubmissionRepo: repos.SubmissionRepo(),
				MessageRepo:    repos.MessageRepo(),
				Notifications:  notifications,
				Conversations:  mockUsecase.NewMockConversationUsecase(t),
				Metrics:        metrics,
				Logger:         newDiscardLogger(),
			})

			notifications.EXPECT().Emit(ctx, mock.AnythingOfType("*usecase.EmitInput")).Return(nil, errors.New("notification store unavailable"))
			metrics.EXPECT().DeliveryWarning(domainerrors.StageNotificationEmit).Return()

			result, err := srv.ReviewSubmission(ctx, &usecase.ReviewInput{
				ExpertID:     expert.ID,
				SubmissionID: submission.ID,
				Status:       status,
				Feedback:     "Treat with copper fungicide",
			})
			require.NoError(t, err)
			assert.Equal(t, status, result.Submission.Status)
			require.Len(t, result.Warnings, 1)
			assert.Equal(t, domainerrors.StageNotificationEmit, result.Warnings[0].Stage)
			assert.Equal(t, farmer.ID, result.Warnings[0].RecipientID)

			stored, err := repos.SubmissionRepo().FindByID(ctx, submission.ID)
			require.NoError(t, err)
			assert.Equal(t, status, stored.Status)
			assert.Equal(t, "Treat with copper fungicide", stored.ExpertFeedback)
			require.NotNil(t, stored.ReviewedBy)
			assert.Equal(t, expert.ID, *stored.ReviewedBy)

			_, err = app.reviews.ReviewSubmission(ctx, &usecase.ReviewInput{
				ExpertID: expert.ID, SubmissionID: submission.ID, Status: entity.SubmissionApproved,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		})
	}
}

func TestReviewService_OnStatusChangedIgnoresNonTerminalStatus(t *testing.T) {
	srv := NewReviewService(ReviewServiceParams{
		ProfileRepo:    mockRepo.NewMockProfileRepository(t),
		SubmissionRepo: mockRepo.NewMockSubmissionRepository(t),
		MessageRepo:    mockRepo.NewMockMessageRepository(t),
		Notifications:  mockUsecase.NewMockNotificationUsecase(t),
		Conversations:  mockUsecase.NewMockConversationUsecase(t),
		Metrics:        mockService.NewMockMetricsRecorder(t),
		Logger:         newDiscardLogger(),
	})
	submission := &entity.DiagnosisSubmission{ID: uuid.New(), FarmerID: uuid.New(), Status: entity.SubmissionPending}

	for _, status := range []entity.SubmissionStatus{"", entity.SubmissionPending, "archived"} {
		assert.NotPanics(t, func() {
			assert.Nil(t, srv.OnStatusChanged(context.Background(), submission, status, "feedback"))
		}, "status %q", status)
	}
}
