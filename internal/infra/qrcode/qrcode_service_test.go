package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"charity/config"
	"charity/internal/domain/identifier"

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
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://charity.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ChildSponsorURL(t *testing.T) {
	childID, err := identifier.Parse("60c72b2f9b1d8e001f8e4e9a")
	require.NoError(t, err)

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"Configured base URL", "https://charity.example", "https://charity.example/sponsor/60c72b2f9b1d8e001f8e4e9a"},
		{"Trailing slash trimmed", "https://charity.example/", "https://charity.example/sponsor/60c72b2f9b1d8e001f8e4e9a"},
		{"Empty base URL", "", "http://localhost:3000/sponsor/60c72b2f9b1d8e001f8e4e9a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, "M", tt.baseURL)
			assert.Equal(t, tt.want, service.ChildSponsorURL(childID))
		})
	}
}

func TestQRCodeService_GenerateChildQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://charity.example")

	qrBytes, err := service.GenerateChildQR(identifier.Generate())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateChildQR_DifferentSizes(t *testing.T) {
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
			service := NewQRCodeService(tt.size, "M", "https://charity.example")

			qrBytes, err := service.GenerateChildQR(identifier.Generate())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	childID := identifier.Generate()

	cfg := &config.Config{}
	service := NewFromConfig(cfg)
	assert.Equal(t, defaultBaseURL+sponsorPath+childID.String(), service.ChildSponsorURL(childID))

	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://give.example"}
	service = NewFromConfig(cfg)
	assert.Equal(t, "https://give.example/sponsor/"+childID.String(), service.ChildSponsorURL(childID))
}
