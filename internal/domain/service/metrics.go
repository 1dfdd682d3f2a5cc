package service

// MetricsRecorder records domain events for monitoring.
type MetricsRecorder interface {
	FollowChanged(op string, changed bool)
	ConversationCreated()
	MessageSent(withSubmission bool)
	NotificationEmitted(notificationType string)
	DeliveryWarning(stage string)
	PushDelivered(sent, failed int)
}
