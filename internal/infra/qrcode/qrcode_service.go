package qrcode

import (
	"encoding/json"

	"agrinet/config"
	"agrinet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// followType tags payloads that ask the scanner to follow the encoded user.
const followType = "follow"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the JSON text embedded in a follow QR code.
type QRCodeData struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 0, ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateFollowQR renders a PNG whose payload identifies userID.
func (s *qrcodeService) GenerateFollowQR(userID uuid.UUID) ([]byte, error) {
	payload, err := json.Marshal(QRCodeData{
		UserID: userID.String(),
		Type:   followType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseFollowQR decodes the scanned payload and returns the user to follow.
func (s *qrcodeService) ParseFollowQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != followType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse user ID")
	}
	if userID == uuid.Nil {
		return uuid.Nil, errors.New("QR code carries the nil user ID")
	}

	return userID, nil
}
