package handler

import (
	"log/slog"
	"net/http"

	"agrinet/internal/delivery/api/response"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConversationHandlerParams holds dependencies for ConversationHandler, injected by Fx.
type ConversationHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	Logger         *slog.Logger
}

// ConversationHandler serves direct messaging.
type ConversationHandler struct {
	conversationUC usecase.ConversationUsecase
	logger         *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler
func NewConversationHandler(params ConversationHandlerParams) *ConversationHandler {
	return &ConversationHandler{
		conversationUC: params.ConversationUC,
		logger:         params.Logger,
	}
}

// StartConversationRequest names the other participant.
type StartConversationRequest struct {
	ParticipantID uuid.UUID `json:"participant_id" validate:"required"`
}

// SendMessageRequest is a text message. Length limits are enforced by the usecase.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// StartConversation returns the conversation between the caller and participant_id, creating it once.
func (h *ConversationHandler) StartConversation(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req StartConversationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	conversation, err := h.conversationUC.GetOrCreateConversation(c.Request().Context(), userID, req.ParticipantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversation)
}

// ListConversations returns the caller's conversations, most recent first.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	summaries, err := h.conversationUC.ListConversationsFor(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

func (h *ConversationHandler) ListMessages(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	conversationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	messages, err := h.conversationUC.ListMessages(c.Request().Context(), conversationID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage answers 201 even when the recipient notification failed; failures come back as warnings.
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	conversationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req SendMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.conversationUC.SendMessage(c.Request().Context(), &usecase.SendMessageInput{
		ConversationID: conversationID,
		SenderID:       userID,
		Text:           req.Text,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithWarnings(c, http.StatusCreated, result.Message, result.Warnings)
}

func (h *ConversationHandler) MarkRead(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}
	conversationID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.conversationUC.MarkRead(c.Request().Context(), conversationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ConversationHandler) UnreadCount(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	count, err := h.conversationUC.UnreadConversationCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count})
}
