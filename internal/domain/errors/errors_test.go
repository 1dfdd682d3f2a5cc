package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrProfileNotFound.WrapMessage("target profile missing")

	assert.True(t, stderrors.Is(err, ErrProfileNotFound))

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "PROFILE_NOT_FOUND", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("text is required")

	assert.Equal(t, "text is required", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDeliveryWarning_Unwrap(t *testing.T) {
	cause := stderrors.New("broker down")
	recipient := uuid.New()

	warning := NewDeliveryWarning(StageNotificationEmit, recipient, cause)

	assert.ErrorIs(t, warning, cause)
	assert.Contains(t, warning.Error(), StageNotificationEmit)
	text, err := warning.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, StageNotificationEmit+":"+recipient.String(), string(text))
}

func TestBaseError_IsMatchesAcrossDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("x")

	assert.True(t, stderrors.Is(detailed, ErrValidationFailed))
	assert.True(t, stderrors.Is(ErrInvalidRecipientRole.WithDetails("role admin"), ErrInvalidRecipientRole))
	assert.ErrorIs(t, ErrInvalidQRCode.WithDetails("bad payload").WrapMessage("follow by qr"), ErrInvalidQRCode)

	assert.False(t, stderrors.Is(ErrSelfFollow, ErrInvalidQRCode))
	assert.False(t, stderrors.Is(ErrForbidden, ErrNotParticipant))
}

func TestBaseError_IsClassifiesByCategory(t *testing.T) {
	assert.ErrorIs(t, ErrProfileNotFound.WithDetails("id"), ErrNotFound)
	assert.ErrorIs(t, ErrConversationNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrSelfFollow, ErrValidationFailed)
	assert.ErrorIs(t, ErrEmptyMessage.WithDetails("blank"), ErrValidationFailed)

	assert.NotErrorIs(t, ErrTransactionFailed, ErrNotFound)
	assert.NotErrorIs(t, ErrNotFound, ErrProfileNotFound)
	assert.NotErrorIs(t, ErrConflict, ErrValidationFailed)
}
