package errors

import (
	"net/http"

	"agrinet/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business code, so a WithDetails copy still matches its sentinel.
// The generic categories ErrNotFound and ErrValidationFailed also match every error of their HTTP code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if e.errorCode == t.errorCode {
		return true
	}

	return (t == ErrNotFound || t == ErrValidationFailed) && e.httpCode == t.httpCode
}

// Predefined error types
var (
	// Generic categories. errors.Is(err, ErrNotFound) holds for every 404 error below, likewise ErrValidationFailed for 400.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrTransactionFailed means the store could not commit; callers may retry.
	ErrTransactionFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSACTION_FAILED",
		"The update could not be committed, please retry",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrSelfFollow = NewBaseError(
		http.StatusBadRequest,
		"SELF_FOLLOW",
		"You cannot follow yourself",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"QR code is not a follow code",
		"",
	)

	// Messaging-related errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrSelfConversation = NewBaseError(
		http.StatusBadRequest,
		"SELF_CONVERSATION",
		"A conversation needs two different participants",
		"",
	)

	ErrEmptyMessage = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_MESSAGE",
		"Message text must not be empty",
		"",
	)

	ErrMessageTooLong = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_TOO_LONG",
		"Message text is too long",
		"",
	)

	ErrNotParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_PARTICIPANT",
		"You are not a participant of this conversation",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many messages, slow down",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrInvalidRecipientRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RECIPIENT_ROLE",
		"Recipient role must be farmer or expert",
		"",
	)

	ErrInvalidNotificationType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NOTIFICATION_TYPE",
		"Unknown notification type",
		"",
	)

	// Review-related errors
	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"Diagnosis submission not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Submission has already been reviewed",
		"",
	)

	ErrExpertRequired = NewBaseError(
		http.StatusForbidden,
		"EXPERT_REQUIRED",
		"Only experts can review submissions",
		"",
	)

	// ErrPushUnavailable means no device could be reached for a reason other than a bad token.
	ErrPushUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PUSH_UNAVAILABLE",
		"Push delivery failed, retry later",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
