package errors

import (
	"fmt"

	"github.com/google/uuid"
)

// Delivery stages that can produce a DeliveryWarning.
const (
	StageNotificationEmit = "notification_emit"
	StageEventPublish     = "event_publish"
	StageRecipientLookup  = "recipient_lookup"
)

// DeliveryWarning reports a notification that could not be delivered after the triggering change was committed.
// It is a soft failure: the primary operation stays committed and the warning is surfaced to the caller.
type DeliveryWarning struct {
	Stage       string
	RecipientID uuid.UUID
	Err         error
}

// NewDeliveryWarning creates a warning for the given stage and recipient.
func NewDeliveryWarning(stage string, recipientID uuid.UUID, err error) DeliveryWarning {
	return DeliveryWarning{Stage: stage, RecipientID: recipientID, Err: err}
}

// Error implements the error interface.
func (w DeliveryWarning) Error() string {
	return fmt.Sprintf("delivery warning at %s for %s: %v", w.Stage, w.RecipientID, w.Err)
}

// Unwrap exposes the underlying failure.
func (w DeliveryWarning) Unwrap() error {
	return w.Err
}

// MarshalText renders the warning for API responses without leaking internals.
func (w DeliveryWarning) MarshalText() ([]byte, error) {
	return []byte(w.Stage + ":" + w.RecipientID.String()), nil
}
