package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://fixly.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://fixly.example")
	workerID := uuid.New()

	qrBytes, err := service.GenerateProfileQR(workerID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")
			workerID := uuid.New()

			qrBytes, err := service.GenerateProfileQR(workerID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://fixly.example")
	workerID := uuid.New()

	data := QRCodeData{
		WorkerID: workerID.String(),
		Type:     qrCodeTypeWorkerProfile,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseProfileQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, workerID, parsedID)
}

func TestQRCodeService_ParseProfileQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseProfileQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseProfileQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		WorkerID: uuid.New().String(),
		Type:     "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseProfileQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseProfileQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		WorkerID: "not-a-valid-uuid",
		Type:     qrCodeTypeWorkerProfile,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseProfileQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse worker ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://fixly.example")
	originalWorkerID := uuid.New()

	qrBytes, err := service.GenerateProfileQR(originalWorkerID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG itself cannot be decoded here; a scanner would hand the JSON
	// payload back, so the parse side is exercised on the payload directly.
	data := QRCodeData{
		WorkerID: originalWorkerID.String(),
		Type:     qrCodeTypeWorkerProfile,
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseProfileQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalWorkerID, parsedID)
}
