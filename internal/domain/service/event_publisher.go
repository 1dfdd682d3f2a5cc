package service

import (
	"context"
)

// NotificationEvent is published after a notification is stored so the push worker can deliver it to devices.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	RecipientRole  string `json:"recipient_role"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	RelatedKind    string `json:"related_kind,omitempty"`
	RelatedID      string `json:"related_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async push delivery
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
