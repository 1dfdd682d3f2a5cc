package qrcode

import (
	"encoding/json"
	"testing"

	"agrinet/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.input))
		})
	}
}

func TestNewQRCodeService_UsesConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})
	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 128, impl.size)
	assert.Equal(t, qrcode.Highest, impl.errorCorrectionLevel)

	fallback := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, 256, fallback.size)
	assert.Equal(t, qrcode.Medium, fallback.errorCorrectionLevel)
}

func TestQRCodeService_GenerateFollowQR(t *testing.T) {
	svc := newQRCodeService(256, "M")

	qrBytes, err := svc.GenerateFollowQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseFollowQR(t *testing.T) {
	svc := newQRCodeService(256, "M")
	userID := uuid.New()

	payload := func(d QRCodeData) string {
		raw, err := json.Marshal(d)
		require.NoError(t, err)

		return string(raw)
	}

	got, err := svc.ParseFollowQR(payload(QRCodeData{UserID: userID.String(), Type: "follow"}))
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "hello"},
		{name: "wrong type", data: payload(QRCodeData{UserID: userID.String(), Type: "subscription"})},
		{name: "bad uuid", data: payload(QRCodeData{UserID: "abc", Type: "follow"})},
		{name: "nil uuid", data: payload(QRCodeData{UserID: uuid.Nil.String(), Type: "follow"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseFollowQR(tt.data)
			assert.Error(t, err)
		})
	}
}
