package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR generates a QR code linking to a worker's public profile
	GenerateProfileQR(workerID uuid.UUID) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the worker ID
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
