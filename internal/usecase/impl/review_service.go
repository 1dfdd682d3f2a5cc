package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	newSubmissionTitle = "New Diagnosis Submission"
	defaultPageSize    = 50
)

type reviewService struct {
	profileRepo    repository.ProfileRepository
	submissionRepo repository.SubmissionRepository
	messageRepo    repository.MessageRepository
	notifications  usecase.NotificationUsecase
	conversations  usecase.ConversationUsecase
	metrics        service.MetricsRecorder
	logger         *slog.Logger
	now            func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ProfileRepo    repository.ProfileRepository
	SubmissionRepo repository.SubmissionRepository
	MessageRepo    repository.MessageRepository
	Notifications  usecase.NotificationUsecase
	Conversations  usecase.ConversationUsecase
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewReviewService creates a new review workflow service instance.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		profileRepo:    params.ProfileRepo,
		submissionRepo: params.SubmissionRepo,
		messageRepo:    params.MessageRepo,
		notifications:  params.Notifications,
		conversations:  params.Conversations,
		metrics:        params.Metrics,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) SubmitForReview(ctx context.Context, input *usecase.SubmitForReviewInput) (*usecase.SubmissionResult, error) {
	if len(input.Diagnosis) == 0 || !json.Valid(input.Diagnosis) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("diagnosis must be a JSON document")
	}

	farmer, err := srv.findProfile(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}

	submission := &entity.DiagnosisSubmission{
		ID:          uuid.New(),
		FarmerID:    farmer.ID,
		FarmerName:  farmer.Name(),
		Diagnosis:   input.Diagnosis,
		ImageData:   input.ImageData,
		Status:      entity.SubmissionPending,
		SubmittedAt: srv.now(),
	}
	if err := srv.submissionRepo.Create(ctx, submission); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "farmer not found")
		}

		return nil, errors.Wrap(err, "failed to create submission")
	}

	srv.log(ctx).Info("Submission created", slog.Any("submission_id", submission.ID), slog.Any("farmer_id", farmer.ID))

	return &usecase.SubmissionResult{
		Submission: submission,
		Warnings:   srv.OnSubmissionCreated(ctx, submission),
	}, nil
}

func (srv *reviewService) OnSubmissionCreated(ctx context.Context, submission *entity.DiagnosisSubmission) []domainerrors.DeliveryWarning {
	experts, err := srv.profileRepo.FindByRole(ctx, entity.RoleExpert)
	if err != nil {
		return []domainerrors.DeliveryWarning{srv.warn(ctx, domainerrors.StageRecipientLookup, uuid.Nil, err)}
	}

	var warnings []domainerrors.DeliveryWarning
	for _, expert := range experts {
		if expert.ID == submission.FarmerID {
			continue
		}

		_, err := srv.notifications.Emit(ctx, &usecase.EmitInput{
			RecipientID:   expert.ID,
			RecipientRole: entity.RecipientExpert,
			Type:          entity.NotificationNewSubmission,
			Title:         newSubmissionTitle,
			Body:          submission.FarmerName + " has submitted a diagnosis for expert review",
			Related:       &entity.RelatedRef{Kind: entity.RelatedSubmission, ID: submission.ID},
		})
		if err != nil {
			warnings = append(warnings, srv.warn(ctx, domainerrors.StageNotificationEmit, expert.ID, err))
		}
	}

	return warnings
}

// ReviewSubmission moves a pending submission to a terminal status. The store applies the change
// only if the submission is still pending, so concurrent reviewers cannot both succeed.
func (srv *reviewService) ReviewSubmission(ctx context.Context, input *usecase.ReviewInput) (*usecase.SubmissionResult, error) {
	if !input.Status.IsTerminal() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be approved or rejected")
	}

	reviewer, err := srv.findProfile(ctx, input.ExpertID)
	if err != nil {
		return nil, err
	}
	if reviewer.Role != entity.RoleExpert {
		return nil, domainerrors.ErrExpertRequired
	}

	submission, err := srv.findSubmission(ctx, input.SubmissionID)
	if err != nil {
		return nil, err
	}
	if !submission.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	feedback := strings.TrimSpace(input.Feedback)
	reviewedAt := srv.now()
	review := repository.SubmissionReview{
		Status:     input.Status,
		Feedback:   feedback,
		ReviewedBy: reviewer.ID,
		ReviewedAt: reviewedAt,
	}
	if err := srv.submissionRepo.ApplyReview(ctx, submission.ID, entity.SubmissionPending, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrSubmissionStatusConflict):
			return nil, domainerrors.ErrInvalidStatusTransition
		case errors.Is(err, repository.ErrSubmissionNotFound):
			return nil, errors.Wrap(domainerrors.ErrSubmissionNotFound, "submission not found")
		default:
			return nil, errors.Wrap(err, "failed to apply review")
		}
	}

	submission.Status = input.Status
	submission.ExpertFeedback = feedback
	submission.ReviewedBy = &reviewer.ID
	submission.ReviewedAt = &reviewedAt

	srv.log(ctx).Info("Submission reviewed",
		slog.Any("submission_id", submission.ID), slog.String("status", string(input.Status)), slog.Any("expert_id", reviewer.ID))

	return &usecase.SubmissionResult{
		Submission: submission,
		Warnings:   srv.OnStatusChanged(ctx, submission, input.Status, feedback),
	}, nil
}

// OnStatusChanged tells the farmer about a terminal review decision. Other statuses are ignored.
func (srv *reviewService) OnStatusChanged(ctx context.Context, submission *entity.DiagnosisSubmission, status entity.SubmissionStatus, feedback string) []domainerrors.DeliveryWarning {
	if !status.IsTerminal() {
		return nil
	}

	label := string(status)
	title := "Diagnosis " + strings.ToUpper(label[:1]) + label[1:]

	body := strings.TrimSpace(feedback)
	if body == "" {
		body = "Your diagnosis has been " + label + " by an expert"
	}

	_, err := srv.notifications.Emit(ctx, &usecase.EmitInput{
		RecipientID:   submission.FarmerID,
		RecipientRole: entity.RecipientFarmer,
		Type:          entity.NotificationStatusUpdate,
		Title:         title,
		Body:          body,
		Related:       &entity.RelatedRef{Kind: entity.RelatedSubmission, ID: submission.ID},
	})
	if err != nil {
		return []domainerrors.DeliveryWarning{srv.warn(ctx, domainerrors.StageNotificationEmit, submission.FarmerID, err)}
	}

	return nil
}

// SendSubmissionMessage posts into the direct conversation between the farmer and an expert,
// tagging the message with the submission.
func (srv *reviewService) SendSubmissionMessage(ctx context.Context, input *usecase.SubmissionMessageInput) (*usecase.SendMessageResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	submission, err := srv.findSubmission(ctx, input.SubmissionID)
	if err != nil {
		return nil, err
	}

	sender, err := srv.findProfile(ctx, input.SenderID)
	if err != nil {
		return nil, err
	}

	var counterpartID uuid.UUID
	switch {
	case sender.Role == entity.RoleExpert:
		counterpartID = submission.FarmerID
	case sender.ID == submission.FarmerID:
		if input.RecipientID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("recipient_id is required")
		}
		recipient, err := srv.findProfile(ctx, *input.RecipientID)
		if err != nil {
			return nil, err
		}
		if recipient.Role != entity.RoleExpert {
			return nil, domainerrors.ErrValidationFailed.WithDetails("recipient must be an expert")
		}
		counterpartID = recipient.ID
	default:
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not part of this submission")
	}

	conversation, err := srv.conversations.GetOrCreateConversation(ctx, sender.ID, counterpartID)
	if err != nil {
		return nil, err
	}

	return srv.conversations.SendMessage(ctx, &usecase.SendMessageInput{
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		Text:           input.Text,
		SubmissionID:   &submission.ID,
	})
}

func (srv *reviewService) ListSubmissionMessages(ctx context.Context, submissionID, viewerID uuid.UUID) ([]*entity.Message, error) {
	submission, err := srv.visibleSubmission(ctx, viewerID, submissionID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindBySubmission(ctx, submission.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list submission messages")
	}

	return messages, nil
}

// ListSubmissions shows experts the whole queue and farmers only their own submissions.
func (srv *reviewService) ListSubmissions(ctx context.Context, viewerID uuid.UUID, status *entity.SubmissionStatus, limit, offset int) ([]*entity.DiagnosisSubmission, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(*status))
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset = max(offset, 0)

	viewer, err := srv.findProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if viewer.Role == entity.RoleExpert {
		submissions, err := srv.submissionRepo.FindAll(ctx, status, limit, offset)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list submissions")
		}

		return submissions, nil
	}

	own, err := srv.submissionRepo.FindByFarmer(ctx, viewer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list submissions")
	}

	filtered := make([]*entity.DiagnosisSubmission, 0, len(own))
	for _, s := range own {
		if status == nil || s.Status == *status {
			filtered = append(filtered, s)
		}
	}
	if offset >= len(filtered) {
		return []*entity.DiagnosisSubmission{}, nil
	}

	return filtered[offset:min(offset+limit, len(filtered))], nil
}

func (srv *reviewService) GetSubmission(ctx context.Context, viewerID, submissionID uuid.UUID) (*entity.DiagnosisSubmission, error) {
	return srv.visibleSubmission(ctx, viewerID, submissionID)
}

func (srv *reviewService) visibleSubmission(ctx context.Context, viewerID, submissionID uuid.UUID) (*entity.DiagnosisSubmission, error) {
	submission, err := srv.findSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.FarmerID == viewerID {
		return submission, nil
	}

	viewer, err := srv.findProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer.Role != entity.RoleExpert {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "submission belongs to another farmer")
	}

	return submission, nil
}

func (srv *reviewService) findProfile(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func (srv *reviewService) findSubmission(ctx context.Context, id uuid.UUID) (*entity.DiagnosisSubmission, error) {
	submission, err := srv.submissionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubmissionNotFound, "submission not found")
		}

		return nil, errors.Wrap(err, "failed to find submission")
	}

	return submission, nil
}

func (srv *reviewService) warn(ctx context.Context, stage string, recipientID uuid.UUID, err error) domainerrors.DeliveryWarning {
	warning := domainerrors.NewDeliveryWarning(stage, recipientID, err)
	srv.metrics.DeliveryWarning(stage)
	srv.log(ctx).Warn("Review notification not delivered", slog.Any("warning", warning.Error()))

	return warning
}
