package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"agrinet/internal/delivery/api/response"
	"agrinet/internal/domain/entity"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// SubmissionHandler serves the expert review workflow.
type SubmissionHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitRequest carries the diagnosis produced on the device.
type SubmitRequest struct {
	Diagnosis json.RawMessage `json:"diagnosis" validate:"required"`
	ImageData string          `json:"image_data"`
}

// ReviewRequest is an expert's decision.
type ReviewRequest struct {
	Status   string `json:"status" validate:"required,oneof=approved rejected"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

// SubmissionMessageRequest posts into the farmer/expert thread of a submission.
// Farmers must name the expert they are writing to.
type SubmissionMessageRequest struct {
	Text        string     `json:"text" validate:"required"`
	RecipientID *uuid.UUID `json:"recipient_id"`
}

func (h *SubmissionHandler) Submit(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req SubmitRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.reviewUC.SubmitForReview(c.Request().Context(), &usecase.SubmitForReviewInput{
		FarmerID:  userID,
		Diagnosis: req.Diagnosis,
		ImageData: req.ImageData,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithWarnings(c, http.StatusCreated, result.Submission, result.Warnings)
}

// ListSubmissions returns the caller's own submissions, or every submission when the caller is an expert.
func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var status *entity.SubmissionStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.SubmissionStatus(raw)
		status = &s
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	submissions, err := h.reviewUC.ListSubmissions(c.Request().Context(), userID, status, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submissions)
}

func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	submissionID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	submission, err := h.reviewUC.GetSubmission(c.Request().Context(), userID, submissionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submission)
}

func (h *SubmissionHandler) Review(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	submissionID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.reviewUC.ReviewSubmission(c.Request().Context(), &usecase.ReviewInput{
		ExpertID:     userID,
		SubmissionID: submissionID,
		Status:       entity.SubmissionStatus(req.Status),
		Feedback:     req.Feedback,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithWarnings(c, http.StatusOK, result.Submission, result.Warnings)
}

func (h *SubmissionHandler) SendMessage(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	submissionID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req SubmissionMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.reviewUC.SendSubmissionMessage(c.Request().Context(), &usecase.SubmissionMessageInput{
		SenderID:     userID,
		SubmissionID: submissionID,
		RecipientID:  req.RecipientID,
		Text:         req.Text,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithWarnings(c, http.StatusCreated, result.Message, result.Warnings)
}

func (h *SubmissionHandler) ListMessages(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	submissionID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	messages, err := h.reviewUC.ListSubmissionMessages(c.Request().Context(), submissionID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}
