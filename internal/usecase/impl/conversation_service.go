package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"agrinet/config"
	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/constants"
	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type conversationService struct {
	txManager        repository.TransactionManager
	profileRepo      repository.ProfileRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	notifications    usecase.NotificationUsecase
	limiter          service.SendLimiter
	metrics          service.MetricsRecorder
	maxTextLength    int
	logger           *slog.Logger
	now              func() time.Time
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ProfileRepo      repository.ProfileRepository
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	Notifications    usecase.NotificationUsecase
	Limiter          service.SendLimiter
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewConversationService creates a new conversation service instance.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	maxTextLength := 0
	if params.Config != nil && params.Config.Messaging != nil {
		maxTextLength = params.Config.Messaging.MaxTextLength
	}

	return &conversationService{
		txManager:        params.TxManager,
		profileRepo:      params.ProfileRepo,
		conversationRepo: params.ConversationRepo,
		messageRepo:      params.MessageRepo,
		notifications:    params.Notifications,
		limiter:          params.Limiter,
		metrics:          params.Metrics,
		maxTextLength:    maxTextLength,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreateConversation derives the conversation id from the unordered pair, so concurrent callers
// race on a single idempotent insert instead of a lookup followed by a write.
func (srv *conversationService) GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*entity.Conversation, error) {
	if a == b {
		return nil, domainerrors.ErrSelfConversation
	}

	id := entity.ConversationID(a, b)

	existing, err := srv.conversationRepo.FindByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	profiles, err := srv.profileRepo.FindByIDs(ctx, []uuid.UUID{a, b})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load participants")
	}
	if len(profiles) != 2 {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "conversation participant not found")
	}

	now := srv.now()
	low, high := entity.SortPair(a, b)
	details := make(map[uuid.UUID]entity.ParticipantDetail, len(profiles))
	for _, p := range profiles {
		details[p.ID] = p.Detail()
	}

	conversation := &entity.Conversation{
		ID:                 id,
		Participants:       [2]uuid.UUID{low, high},
		ParticipantDetails: details,
		LastMessage: entity.LastMessage{
			Text:      constants.ConversationStartedText,
			SenderID:  a,
			CreatedAt: now,
		},
		LastRead:  map[uuid.UUID]time.Time{a: now, b: now},
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		created, err = repoFactory.ConversationRepo().CreateIfNotExists(ctx, conversation)

		return errors.Wrap(err, "failed to create conversation")
	})
	if err != nil {
		return nil, err
	}

	if !created {
		// Lost the race to the other participant; theirs is the same conversation.
		existing, err := srv.conversationRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load concurrently created conversation")
		}

		return existing, nil
	}

	srv.metrics.ConversationCreated()
	srv.log(ctx).Info("Conversation created", slog.Any("conversation_id", id))

	return conversation, nil
}

// SendMessage appends to the log under the conversation row lock, then notifies the other participant.
// A failed notification never undoes the stored message; it is reported as a warning.
func (srv *conversationService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*usecase.SendMessageResult, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrEmptyMessage
	}
	if srv.maxTextLength > 0 && utf8.RuneCountInString(text) > srv.maxTextLength {
		return nil, domainerrors.ErrMessageTooLong
	}
	if !srv.limiter.Allow(input.SenderID) {
		return nil, domainerrors.ErrRateLimited
	}

	var (
		conversation *entity.Conversation
		message      *entity.Message
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		conversationRepo := repoFactory.ConversationRepo()

		var err error
		conversation, err = conversationRepo.FindByIDForUpdate(ctx, input.ConversationID)
		if err != nil {
			if errors.Is(err, repository.ErrConversationNotFound) {
				return errors.Wrap(domainerrors.ErrConversationNotFound, "conversation not found")
			}

			return errors.Wrap(err, "failed to lock conversation")
		}
		if !conversation.HasParticipant(input.SenderID) {
			return domainerrors.ErrNotParticipant
		}

		now := srv.now()
		message = &entity.Message{
			ID:             uuid.New(),
			ConversationID: conversation.ID,
			Seq:            conversation.LastSeq + 1,
			SenderID:       input.SenderID,
			Text:           text,
			SubmissionID:   input.SubmissionID,
			CreatedAt:      now,
		}
		if err := repoFactory.MessageRepo().Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to store message")
		}

		last := entity.LastMessage{Text: text, SenderID: input.SenderID, CreatedAt: now}
		if err := conversationRepo.UpdateLastMessage(ctx, conversation.ID, last, message.Seq); err != nil {
			return errors.Wrap(err, "failed to update last message")
		}
		if err := conversationRepo.UpdateLastRead(ctx, conversation.ID, input.SenderID, now); err != nil {
			return errors.Wrap(err, "failed to advance sender read cursor")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send message",
			slog.Any("conversation_id", input.ConversationID), slog.Any("sender_id", input.SenderID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.MessageSent(input.SubmissionID != nil)
	srv.log(ctx).Debug("Message sent",
		slog.Any("conversation_id", message.ConversationID), slog.Int64("seq", message.Seq))

	result := &usecase.SendMessageResult{Message: message}
	if warning := srv.notifyRecipient(ctx, conversation, message); warning != nil {
		result.Warnings = append(result.Warnings, *warning)
	}

	return result, nil
}

// notifyRecipient emits new_message, or expert_response when an expert answers in a submission context.
func (srv *conversationService) notifyRecipient(ctx context.Context, conversation *entity.Conversation, message *entity.Message) *domainerrors.DeliveryWarning {
	recipientID := conversation.OtherParticipant(message.SenderID)

	profiles, err := srv.profileRepo.FindByIDs(ctx, []uuid.UUID{message.SenderID, recipientID})
	if err != nil {
		return srv.warn(ctx, domainerrors.StageRecipientLookup, recipientID, err)
	}

	var sender, recipient *entity.UserProfile
	for _, p := range profiles {
		switch p.ID {
		case message.SenderID:
			sender = p
		case recipientID:
			recipient = p
		}
	}
	if sender == nil || recipient == nil {
		return srv.warn(ctx, domainerrors.StageRecipientLookup, recipientID, repository.ErrProfileNotFound)
	}

	input := &usecase.EmitInput{
		RecipientID:   recipientID,
		RecipientRole: recipientRoleOf(recipient),
		Type:          entity.NotificationNewMessage,
		Title:         "New message from " + sender.Name(),
		Body:          previewText(message.Text),
		Related:       &entity.RelatedRef{Kind: entity.RelatedConversation, ID: conversation.ID},
	}
	if message.SubmissionID != nil && sender.Role == entity.RoleExpert {
		input.Type = entity.NotificationExpertResponse
		input.Title = "Expert response from " + sender.Name()
		input.Related = &entity.RelatedRef{Kind: entity.RelatedSubmission, ID: *message.SubmissionID}
	}

	if _, err := srv.notifications.Emit(ctx, input); err != nil {
		return srv.warn(ctx, domainerrors.StageNotificationEmit, recipientID, err)
	}

	return nil
}

func (srv *conversationService) warn(ctx context.Context, stage string, recipientID uuid.UUID, err error) *domainerrors.DeliveryWarning {
	warning := domainerrors.NewDeliveryWarning(stage, recipientID, err)
	srv.metrics.DeliveryWarning(stage)
	srv.log(ctx).Warn("Message notification not delivered", slog.Any("warning", warning.Error()))

	return &warning
}

func (srv *conversationService) MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	conversation, err := srv.participantConversation(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	if err := srv.conversationRepo.UpdateLastRead(ctx, conversation.ID, userID, srv.now()); err != nil {
		return errors.Wrap(err, "failed to update read cursor")
	}

	return nil
}

func (srv *conversationService) ListConversationsFor(ctx context.Context, userID uuid.UUID) ([]entity.ConversationSummary, error) {
	conversations, err := srv.conversationRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	summaries := make([]entity.ConversationSummary, 0, len(conversations))
	for _, c := range conversations {
		summaries = append(summaries, c.SummaryFor(userID))
	}
	slices.SortStableFunc(summaries, func(x, y entity.ConversationSummary) int {
		return cmp.Compare(y.LastMessage.CreatedAt.UnixNano(), x.LastMessage.CreatedAt.UnixNano())
	})

	return summaries, nil
}

func (srv *conversationService) ListMessages(ctx context.Context, conversationID, viewerID uuid.UUID) ([]*entity.Message, error) {
	if _, err := srv.participantConversation(ctx, conversationID, viewerID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindByConversation(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

func (srv *conversationService) UnreadConversationCount(ctx context.Context, userID uuid.UUID) (int, error) {
	conversations, err := srv.conversationRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list conversations")
	}

	count := 0
	for _, c := range conversations {
		if c.IsUnreadFor(userID) {
			count++
		}
	}

	return count, nil
}

func (srv *conversationService) participantConversation(ctx context.Context, conversationID, userID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "conversation not found")
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}
	if !conversation.HasParticipant(userID) {
		return nil, domainerrors.ErrNotParticipant
	}

	return conversation, nil
}

// recipientRoleOf picks the inbox a profile reads its notifications from.
func recipientRoleOf(profile *entity.UserProfile) entity.RecipientRole {
	if profile.Role == entity.RoleExpert {
		return entity.RecipientExpert
	}

	return entity.RecipientFarmer
}

func previewText(text string) string {
	if utf8.RuneCountInString(text) <= constants.NotificationPreviewRunes {
		return text
	}

	return string([]rune(text)[:constants.NotificationPreviewRunes]) + "..."
}
