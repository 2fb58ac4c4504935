// Package qrcode implements QR code generation for worker profile sharing.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"fixly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	WorkerID   string `json:"worker_id"`
	ProfileURL string `json:"profile_url,omitempty"`
	Type       string `json:"type"`
}

const qrCodeTypeWorkerProfile = "worker_profile"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateProfileQR generates a QR code linking to a worker's public profile
func (s *qrcodeService) GenerateProfileQR(workerID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		WorkerID: workerID.String(),
		Type:     qrCodeTypeWorkerProfile,
	}
	if s.baseURL != "" {
		data.ProfileURL = fmt.Sprintf("%s/workers/%s", s.baseURL, workerID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProfileQR parses QR code data and returns the worker ID
func (s *qrcodeService) ParseProfileQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrCodeTypeWorkerProfile {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	workerID, err := uuid.Parse(data.WorkerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse worker ID: %w", err)
	}

	return workerID, nil
}
