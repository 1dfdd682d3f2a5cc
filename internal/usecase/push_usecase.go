package usecase

import (
	"context"

	"agrinet/internal/domain/service"
)

// PushReport summarises one push delivery attempt.
type PushReport struct {
	Sent        int `json:"sent"`
	Failed      int `json:"failed"`
	Deactivated int `json:"deactivated"`
}

// PushDeliveryUsecase fans a stored notification out to the recipient's devices.
type PushDeliveryUsecase interface {
	DeliverNotification(ctx context.Context, event *service.NotificationEvent) (*PushReport, error)
}
