package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"messaging": map[string]any{
			"maxTextLength":     2000,
			"sendRatePerSecond": 1,
		},
		"notification": map[string]any{
			"maxPerRecipient": 500,
		},
		"redis": map[string]any{
			"unreadTtl": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MESSAGING_MAXTEXTLENGTH", want: "messaging.maxTextLength"},
		{envKey: "MESSAGING_SENDRATEPERSECOND", want: "messaging.sendRatePerSecond"},
		{envKey: "NOTIFICATION_MAXPERRECIPIENT", want: "notification.maxPerRecipient"},
		{envKey: "REDIS_UNREADTTL", want: "redis.unreadTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{URL: "redis://localhost:6379/0"}}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxTextLength, cfg.Messaging.MaxTextLength)
	assert.Equal(t, float64(defaultSendRatePerSecond), cfg.Messaging.SendRatePerSecond)
	assert.Equal(t, defaultSendBurst, cfg.Messaging.SendBurst)
	assert.Equal(t, defaultMaxPerRecipient, cfg.Notification.MaxPerRecipient)
	assert.Equal(t, defaultUnreadCountTTL, cfg.Redis.UnreadTTL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRCorrectionLevel, cfg.QRCode.ErrorCorrectionLevel)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Messaging:    &MessagingConfig{MaxTextLength: 10, SendRatePerSecond: 3, SendBurst: 1},
		Notification: &NotificationConfig{MaxPerRecipient: 20},
	}

	cfg.applyDefaults()

	assert.Equal(t, 10, cfg.Messaging.MaxTextLength)
	assert.Equal(t, 3.0, cfg.Messaging.SendRatePerSecond)
	assert.Equal(t, 1, cfg.Messaging.SendBurst)
	assert.Equal(t, 20, cfg.Notification.MaxPerRecipient)
	assert.Nil(t, cfg.Redis)
}
