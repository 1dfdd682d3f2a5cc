// Package constants contains values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ConversationStartedText is the synthetic last message of a freshly created conversation.
const ConversationStartedText = "Conversation started"

// NotificationPreviewRunes is the maximum number of runes of a message copied into a new_message notification body.
const NotificationPreviewRunes = 100

// FCMBatchSize is the maximum number of tokens Firebase accepts in one multicast request.
const FCMBatchSize = 500
