package service

import (
	"charity/internal/domain/identifier"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateChildQR generates a PNG QR code that links to a child's sponsor page
	GenerateChildQR(childID identifier.ID) ([]byte, error)

	// ChildSponsorURL returns the link encoded by GenerateChildQR
	ChildSponsorURL(childID identifier.ID) string
}
